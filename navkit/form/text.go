package form

import (
	"bytes"

	"keynav/navkit/focus"
	"keynav/navkit/gesture"
	"keynav/navkit/surface"
)

// Charset is the group of characters UP and DOWN cycle through.
type Charset uint8

const (
	Lower Charset = iota
	Upper
	Digit
	Symbol
	charsets
)

func (c Charset) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Symbols is the cycle order of the symbol charset.
var Symbols = []byte(`.,!?:;-'()[]{}/\^~*&%$#@`)

const (
	labelHeight = 10
	boxHeight   = 14
	textPadding = 3
)

// TextInput edits a single line of ASCII text with five buttons.
//
// While editing, UP/DOWN cycle the character under the cursor within the
// active charset and LEFT/RIGHT move the cursor. Double-clicks switch
// charset (UP/DOWN), delete (LEFT) and insert a space (RIGHT). SELECT leaves
// edit mode.
type TextInput struct {
	label    string
	value    []byte
	cursor   int
	first    int
	charset  Charset
	editing  bool
	selected bool
}

// NewTextInput returns a field with an initial value.
func NewTextInput(label, value string) *TextInput {
	return &TextInput{label: label, value: []byte(value)}
}

func (t *TextInput) Label() string      { return t.label }
func (t *TextInput) Value() string      { return string(t.value) }
func (t *TextInput) Cursor() int        { return t.cursor }
func (t *TextInput) Charset() Charset   { return t.charset }
func (t *TextInput) Height() int        { return labelHeight + boxHeight + 5 }
func (t *TextInput) CanEdit() bool      { return true }
func (t *TextInput) Editing() bool      { return t.editing }
func (t *TextInput) SetSelected(s bool) { t.selected = s }

// SetEditing enters or leaves edit mode. Entering with the cursor past the
// end appends an 'a' to edit.
func (t *TextInput) SetEditing(editing bool) {
	t.editing = editing
	if !editing {
		return
	}
	if t.cursor >= len(t.value) {
		t.value = append(t.value, 'a')
	}
	t.charset = Lower
}

func (t *TextInput) HandleInput(in focus.Input) bool {
	if !t.editing {
		return false
	}
	switch in.Kind {
	case gesture.ShortClick:
		switch in.Key {
		case focus.KeyLeft:
			t.moveCursor(-1)
		case focus.KeyRight:
			t.moveCursor(1)
		case focus.KeySelect:
			t.SetEditing(false)
		case focus.KeyUp:
			t.cycle(1)
		case focus.KeyDown:
			t.cycle(-1)
		default:
			return false
		}
		return true
	case gesture.DoubleClick:
		switch in.Key {
		case focus.KeyUp:
			t.charset = (t.charset + 1) % charsets
			t.setCharsetStart()
		case focus.KeyDown:
			t.charset = (t.charset + charsets - 1) % charsets
			t.setCharsetStart()
		case focus.KeyLeft:
			if t.cursor < len(t.value) {
				t.value = append(t.value[:t.cursor], t.value[t.cursor+1:]...)
			}
		case focus.KeyRight:
			t.value = append(t.value[:t.cursor], append([]byte{' '}, t.value[t.cursor:]...)...)
			t.cursor++
		case focus.KeySelect:
			t.SetEditing(false)
		default:
			return false
		}
		return true
	}
	return false
}

func (t *TextInput) Draw(f *focus.Frame, x, y, width int) {
	c := f.Canvas
	if t.selected {
		c.VLine(x, y, t.Height(), surface.On)
	}

	boxY := y + labelHeight
	textX := x + 4 + textPadding
	textY := boxY + textPadding
	boxW := width - 4
	cw := c.CharWidth()
	visible := (boxW - 2*textPadding) / cw

	if t.cursor < t.first {
		t.first = t.cursor
	} else if visible > 0 && t.cursor >= t.first+visible {
		t.first = t.cursor - visible + 1
	}

	c.TextAt(x+4, y+1, surface.On, t.label+":")
	c.RoundRect(x+4, boxY, boxW, boxHeight, 3, surface.On)

	end := t.first + visible
	if end > len(t.value) {
		end = len(t.value)
	}
	if t.first < end {
		c.TextAt(textX, textY, surface.On, string(t.value[t.first:end]))
	}

	if t.editing && blinkOn(f.Now) {
		c.HLine(textX+(t.cursor-t.first)*cw, textY+8, 5, surface.On)
	}
}

func (t *TextInput) moveCursor(d int) {
	t.cursor += d
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor > len(t.value) {
		t.cursor = len(t.value)
	}
	if t.cursor < len(t.value) {
		if cs, ok := charsetOf(t.value[t.cursor]); ok {
			t.charset = cs
		}
	}
}

// pad extends the value with spaces until the cursor is inside it.
func (t *TextInput) pad() {
	for t.cursor >= len(t.value) {
		t.value = append(t.value, ' ')
	}
}

func (t *TextInput) setCharsetStart() {
	t.pad()
	switch t.charset {
	case Lower:
		t.value[t.cursor] = 'a'
	case Upper:
		t.value[t.cursor] = 'A'
	case Digit:
		t.value[t.cursor] = '0'
	case Symbol:
		t.value[t.cursor] = Symbols[0]
	}
}

func (t *TextInput) cycle(dir int) {
	t.pad()
	t.value[t.cursor] = cycleChar(t.charset, t.value[t.cursor], dir)
}

func cycleChar(cs Charset, c byte, dir int) byte {
	switch cs {
	case Lower:
		return cycleRange(c, 'a', 'z', dir)
	case Upper:
		return cycleRange(c, 'A', 'Z', dir)
	case Digit:
		return cycleRange(c, '0', '9', dir)
	}
	i := bytes.IndexByte(Symbols, c)
	if dir > 0 {
		if i >= 0 && i+1 < len(Symbols) {
			return Symbols[i+1]
		}
		return Symbols[0]
	}
	if i > 0 {
		return Symbols[i-1]
	}
	return Symbols[len(Symbols)-1]
}

// cycleRange steps c within [lo, hi], wrapping at both ends. A character
// outside the range restarts at the end it wraps to.
func cycleRange(c, lo, hi byte, dir int) byte {
	if c < lo || c > hi {
		if dir > 0 {
			return lo
		}
		return hi
	}
	if dir > 0 {
		if c < hi {
			return c + 1
		}
		return lo
	}
	if c > lo {
		return c - 1
	}
	return hi
}

func charsetOf(c byte) (Charset, bool) {
	switch {
	case c >= 'a' && c <= 'z', c == ' ':
		return Lower, true
	case c >= 'A' && c <= 'Z':
		return Upper, true
	case c >= '0' && c <= '9':
		return Digit, true
	case bytes.IndexByte(Symbols, c) >= 0:
		return Symbol, true
	}
	return 0, false
}
