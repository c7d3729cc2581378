// Package focus moves a selection cursor through an ordered list of
// variable-height items and routes gestures to the focused item.
package focus

import (
	"keynav/navkit/gesture"
	"keynav/navkit/surface"
)

// Key is a logical button.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySelect
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySelect:
		return "select"
	default:
		return "none"
	}
}

// Keymap designates which registered sources act as navigation keys.
type Keymap struct {
	Up     gesture.SourceID
	Down   gesture.SourceID
	Left   gesture.SourceID
	Right  gesture.SourceID
	Select gesture.SourceID
}

// UnboundKeymap maps nothing; set only the keys a view needs.
func UnboundKeymap() Keymap {
	return Keymap{
		Up:     gesture.NoSource,
		Down:   gesture.NoSource,
		Left:   gesture.NoSource,
		Right:  gesture.NoSource,
		Select: gesture.NoSource,
	}
}

// Resolve translates ev into a logical Input.
func (m Keymap) Resolve(ev gesture.Event) Input {
	in := Input{Kind: ev.Kind, Event: ev}
	if ev.Source == gesture.NoSource {
		return in
	}
	switch ev.Source {
	case m.Up:
		in.Key = KeyUp
	case m.Down:
		in.Key = KeyDown
	case m.Left:
		in.Key = KeyLeft
	case m.Right:
		in.Key = KeyRight
	case m.Select:
		in.Key = KeySelect
	}
	return in
}

// Input is a gesture resolved against a Keymap.
type Input struct {
	Key   Key
	Kind  gesture.Kind
	Event gesture.Event
}

// Is reports whether the input is gesture kind on key k.
func (in Input) Is(k Key, kind gesture.Kind) bool {
	return in.Key == k && in.Kind == kind
}

// Frame carries per-render state to drawing code.
type Frame struct {
	Canvas *surface.Canvas
	Now    gesture.Millis
}

// Item is a focusable list entry.
type Item interface {
	// Height is the intrinsic height in pixels.
	Height() int
	Draw(f *Frame, x, y, width int)
	// HandleInput returns true when the item consumed the input.
	HandleInput(in Input) bool
	SetSelected(selected bool)
}

// Editable is implemented by items with an edit mode.
type Editable interface {
	CanEdit() bool
	Editing() bool
	SetEditing(editing bool)
}

// Navigator is anything that owns input focus for a screen.
type Navigator interface {
	Dispatch(ev gesture.Event)
	Draw(f *Frame)
}
