package surface

import (
	"image/color"
	"strings"
)

// Memory is a 1bpp in-memory display. It satisfies drivers.Displayer.
type Memory struct {
	w, h    int16
	bits    []bool
	flushes int
}

// NewMemory returns a blank w x h buffer.
func NewMemory(w, h int) *Memory {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Memory{w: int16(w), h: int16(h), bits: make([]bool, w*h)}
}

func (m *Memory) Size() (x, y int16) { return m.w, m.h }

// SetPixel lights the pixel when c has any non-zero color channel.
func (m *Memory) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[int(y)*int(m.w)+int(x)] = c.R|c.G|c.B != 0
}

func (m *Memory) Display() error {
	m.flushes++
	return nil
}

func (m *Memory) ClearBuffer() {
	for i := range m.bits {
		m.bits[i] = false
	}
}

// Lit reports whether (x, y) is on.
func (m *Memory) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= int(m.w) || y >= int(m.h) {
		return false
	}
	return m.bits[y*int(m.w)+x]
}

// Flushes returns how many times Display was called.
func (m *Memory) Flushes() int { return m.flushes }

// CountLit returns the number of lit pixels inside the rectangle.
func (m *Memory) CountLit(x, y, w, h int) int {
	n := 0
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if m.Lit(px, py) {
				n++
			}
		}
	}
	return n
}

// String renders the buffer as rows of '#' and '.', for test failure output.
func (m *Memory) String() string {
	var sb strings.Builder
	for y := 0; y < int(m.h); y++ {
		for x := 0; x < int(m.w); x++ {
			if m.Lit(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
