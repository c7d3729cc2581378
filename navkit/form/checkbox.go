package form

import (
	"keynav/navkit/focus"
	"keynav/navkit/gesture"
	"keynav/navkit/hscroll"
	"keynav/navkit/surface"
)

const (
	boxSize       = 10
	boxMargin     = 3
	checkHeight   = 14
	labelInterval = 200
)

// CheckBox is a labelled boolean. While editing, UP checks, DOWN unchecks,
// SELECT toggles and a SELECT double-click leaves edit mode.
type CheckBox struct {
	label    string
	checked  bool
	editing  bool
	selected bool
	scroll   hscroll.PingPong
}

// NewCheckBox returns a checkbox in the given state.
func NewCheckBox(label string, checked bool) *CheckBox {
	return &CheckBox{
		label:   label,
		checked: checked,
		scroll:  hscroll.PingPong{Step: 1, Interval: labelInterval},
	}
}

func (b *CheckBox) Label() string      { return b.label }
func (b *CheckBox) Checked() bool      { return b.checked }
func (b *CheckBox) Height() int        { return checkHeight }
func (b *CheckBox) CanEdit() bool      { return true }
func (b *CheckBox) Editing() bool      { return b.editing }
func (b *CheckBox) SetEditing(e bool)  { b.editing = e }
func (b *CheckBox) SetSelected(s bool) { b.selected = s }
func (b *CheckBox) SetChecked(v bool)  { b.checked = v }

func (b *CheckBox) HandleInput(in focus.Input) bool {
	if !b.editing {
		return false
	}
	switch {
	case in.Is(focus.KeyUp, gesture.ShortClick):
		b.checked = true
	case in.Is(focus.KeyDown, gesture.ShortClick):
		b.checked = false
	case in.Is(focus.KeySelect, gesture.ShortClick):
		b.checked = !b.checked
	case in.Is(focus.KeySelect, gesture.DoubleClick):
		b.editing = false
	default:
		return false
	}
	return true
}

func (b *CheckBox) Draw(f *focus.Frame, x, y, width int) {
	c := f.Canvas
	if b.selected {
		c.VLine(x, y, b.Height(), surface.On)
	}

	boxX := x + 4
	boxY := y + (checkHeight-boxSize)/2
	c.Rect(boxX, boxY, boxSize, boxSize, surface.On)
	if b.checked {
		c.Line(boxX+1, boxY+boxSize/2, boxX+boxSize/2, boxY+boxSize-2, surface.On)
		c.Line(boxX+boxSize/2, boxY+boxSize-2, boxX+boxSize-1, boxY+1, surface.On)
	}

	textX := boxX + boxSize + boxMargin
	visible := (width - (textX - x)) / c.CharWidth()
	text := b.label
	if b.selected && hscroll.Len(text) > visible {
		off := b.scroll.Update(f.Now, hscroll.MaxScroll(hscroll.Len(text), visible))
		text = hscroll.Slice(text, off, visible)
	} else {
		b.scroll.Reset(f.Now)
		text = hscroll.Slice(text, 0, visible)
	}
	c.TextAt(textX, y+3, surface.On, text)

	if b.editing && blinkOn(f.Now) {
		c.HLine(boxX, boxY+boxSize+1, boxSize, surface.On)
	}
}
