package form

import (
	"keynav/navkit/focus"
	"keynav/navkit/gesture"
	"keynav/navkit/hscroll"
	"keynav/navkit/surface"
)

const (
	choiceHeight  = 22
	choicePadding = 4
	blinkInterval = 500
)

// Choice picks one of a fixed set of options. While editing, LEFT and RIGHT
// step through the options without wrapping and a SELECT double-click
// leaves edit mode.
type Choice struct {
	label    string
	options  []string
	index    int
	editing  bool
	selected bool

	scroll     hscroll.PingPong
	blink      bool
	blinkStart bool
	lastBlink  gesture.Millis
}

// NewChoice returns a choice with the option at index selected. An
// out-of-range index selects the first option.
func NewChoice(label string, options []string, index int) *Choice {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return &Choice{
		label:   label,
		options: options,
		index:   index,
		scroll:  hscroll.PingPong{Step: 1, Interval: labelInterval},
	}
}

func (ch *Choice) Label() string      { return ch.label }
func (ch *Choice) Options() []string  { return ch.options }
func (ch *Choice) Index() int         { return ch.index }
func (ch *Choice) Height() int        { return choiceHeight }
func (ch *Choice) CanEdit() bool      { return true }
func (ch *Choice) Editing() bool      { return ch.editing }
func (ch *Choice) SetSelected(s bool) { ch.selected = s }

// Value returns the selected option, or "" when there are none.
func (ch *Choice) Value() string {
	if len(ch.options) == 0 {
		return ""
	}
	return ch.options[ch.index]
}

func (ch *Choice) SetEditing(editing bool) {
	ch.editing = editing
	ch.blink = true
	ch.blinkStart = true
	ch.scroll = hscroll.PingPong{Step: 1, Interval: labelInterval}
}

func (ch *Choice) HandleInput(in focus.Input) bool {
	if !ch.editing {
		return false
	}
	switch {
	case in.Is(focus.KeyLeft, gesture.ShortClick):
		if ch.index > 0 {
			ch.index--
			return true
		}
	case in.Is(focus.KeyRight, gesture.ShortClick):
		if ch.index < len(ch.options)-1 {
			ch.index++
			return true
		}
	case in.Is(focus.KeySelect, gesture.DoubleClick):
		ch.SetEditing(false)
		return true
	}
	return false
}

// Markers returns the glyphs drawn around the value. While editing, a bar
// marks an end of the option list.
func (ch *Choice) Markers() (left, right string) {
	left, right = "<", ">"
	if !ch.editing {
		return left, right
	}
	if ch.index == 0 {
		left = "|"
	}
	if ch.index >= len(ch.options)-1 {
		right = "|"
	}
	return left, right
}

func (ch *Choice) Draw(f *focus.Frame, x, y, width int) {
	c := f.Canvas
	cw := c.CharWidth()
	if ch.selected {
		c.VLine(x, y, ch.Height(), surface.On)
	}
	c.TextAt(x+4, y+2, surface.On, ch.label+":")

	textX := x + 4
	textY := y + choiceHeight - 9
	visible := (width - 2*choicePadding - 2*cw) / cw

	value := ch.Value()
	n := hscroll.Len(value)
	if (ch.selected || ch.editing) && n > visible {
		off := ch.scroll.Update(f.Now, hscroll.MaxScroll(n, visible))
		value = hscroll.Slice(value, off, visible)
	} else {
		ch.scroll.Reset(f.Now)
		value = hscroll.Slice(value, 0, visible)
	}

	left, right := ch.Markers()
	c.TextAt(textX, textY, surface.On, left+value+right)

	if !ch.editing || len(ch.options) == 0 {
		return
	}
	if ch.blinkStart {
		ch.lastBlink = f.Now
		ch.blinkStart = false
	}
	if gesture.Since(f.Now, ch.lastBlink) > blinkInterval {
		ch.blink = !ch.blink
		ch.lastBlink = f.Now
	}
	if ch.blink {
		c.HLine(textX+cw, textY+8, hscroll.Len(value)*cw, surface.On)
	}
}
