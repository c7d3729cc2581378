package form

import (
	"keynav/navkit/focus"
	"keynav/navkit/gesture"
	"keynav/navkit/hscroll"
	"keynav/navkit/surface"
)

const (
	buttonHeight = 12
	buttonRadius = 4
	buttonPad    = 3
)

// Button runs its callback with its label on a SELECT click. It has no edit
// mode.
type Button struct {
	label    string
	onPress  func(label string)
	selected bool
}

// NewButton returns a button. A nil callback makes it inert.
func NewButton(label string, onPress func(label string)) *Button {
	return &Button{label: label, onPress: onPress}
}

func (b *Button) Label() string      { return b.label }
func (b *Button) Height() int        { return buttonHeight }
func (b *Button) SetSelected(s bool) { b.selected = s }

func (b *Button) HandleInput(in focus.Input) bool {
	if !in.Is(focus.KeySelect, gesture.ShortClick) {
		return false
	}
	if b.onPress != nil {
		b.onPress(b.label)
	}
	return true
}

func (b *Button) Draw(f *focus.Frame, x, y, _ int) {
	c := f.Canvas
	cw := c.CharWidth()
	w := hscroll.Len(b.label)*cw + 2*buttonPad*cw

	fg := surface.On
	if b.selected {
		c.FillRoundRect(x, y, w, buttonHeight, buttonRadius, surface.On)
		fg = surface.Off
	} else {
		c.RoundRect(x, y, w, buttonHeight, buttonRadius, surface.On)
	}
	c.TextAt(x+buttonPad*cw, y+(buttonHeight-c.CharHeight())/2, fg, b.label)
}
