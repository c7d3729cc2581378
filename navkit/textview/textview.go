// Package textview shows a scrolling log of text lines with a selection
// cursor and manual horizontal paging.
package textview

import (
	"keynav/navkit/focus"
	"keynav/navkit/gesture"
	"keynav/navkit/hscroll"
	"keynav/navkit/surface"
	"keynav/navkit/viewport"
)

// DefaultMaxLines bounds the buffer when no limit is given.
const DefaultMaxLines = 300

const (
	barWidth = 4
	marker   = ">"
)

// Viewer holds at most a fixed number of lines, dropping the oldest.
type Viewer struct {
	keys focus.Keymap

	buf   []string
	start int
	n     int

	selected int
	first    int
	pager    hscroll.Pager

	width, height int
	lineHeight    int
	charWidth     int
}

// New returns an empty viewer for a width x height area. maxLines <= 0
// selects DefaultMaxLines.
func New(keys focus.Keymap, width, height, maxLines int) *Viewer {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Viewer{
		keys:       keys,
		buf:        make([]string, maxLines),
		width:      width,
		height:     height,
		lineHeight: surface.CharHeight * 12 / 10,
		charWidth:  surface.CharWidth,
	}
}

// Len returns the number of buffered lines.
func (v *Viewer) Len() int { return v.n }

// Cap returns the buffer limit.
func (v *Viewer) Cap() int { return len(v.buf) }

// Line returns line i, oldest first.
func (v *Viewer) Line(i int) string {
	if i < 0 || i >= v.n {
		return ""
	}
	return v.buf[(v.start+i)%len(v.buf)]
}

func (v *Viewer) Selected() int { return v.selected }
func (v *Viewer) First() int    { return v.first }
func (v *Viewer) Offset() int   { return v.pager.Offset() }

// Rows returns how many lines fit on screen.
func (v *Viewer) Rows() int { return viewport.Rows(v.height, v.lineHeight) }

// Columns returns how many characters of a line are shown after the
// selection marker.
func (v *Viewer) Columns() int {
	c := (v.width-barWidth)/v.charWidth - hscroll.Len(marker)
	if c < 0 {
		return 0
	}
	return c
}

// AddLine appends s, dropping the oldest line when full. While the newest
// line is selected the selection follows the tail; otherwise it stays on
// the line it was on.
func (v *Viewer) AddLine(s string) {
	tail := v.n == 0 || v.selected == v.n-1
	if v.n < len(v.buf) {
		v.buf[(v.start+v.n)%len(v.buf)] = s
		v.n++
	} else {
		v.buf[v.start] = s
		v.start = (v.start + 1) % len(v.buf)
		if v.selected > 0 {
			v.selected--
		}
		if v.first > 0 {
			v.first--
		}
	}
	if tail {
		v.selected = v.n - 1
	}
	v.first = viewport.Follow(v.first, v.selected, v.Rows(), v.n)
	v.pager.Clamp(v.MaxScroll())
}

// Clear drops every line and resets scrolling.
func (v *Viewer) Clear() {
	for i := range v.buf {
		v.buf[i] = ""
	}
	v.start, v.n = 0, 0
	v.selected, v.first = 0, 0
	v.pager.Reset()
}

// ScrollUp selects the previous line.
func (v *Viewer) ScrollUp() {
	if v.selected > 0 {
		v.selected--
		v.first = viewport.Follow(v.first, v.selected, v.Rows(), v.n)
	}
}

// ScrollDown selects the next line.
func (v *Viewer) ScrollDown() {
	if v.selected < v.n-1 {
		v.selected++
		v.first = viewport.Follow(v.first, v.selected, v.Rows(), v.n)
	}
}

// ScrollRight reveals text further right by step characters.
func (v *Viewer) ScrollRight(step int) { v.pager.Forward(step, v.MaxScroll()) }

// ScrollLeft moves back toward the start of the lines.
func (v *Viewer) ScrollLeft(step int) { v.pager.Back(step, v.MaxScroll()) }

// MaxScroll is the largest horizontal offset useful for the visible lines.
func (v *Viewer) MaxScroll() int {
	max := 0
	cols := v.Columns()
	for i := v.first; i < v.first+v.Rows() && i < v.n; i++ {
		if m := hscroll.MaxScroll(hscroll.Len(v.Line(i)), cols); m > max {
			max = m
		}
	}
	return max
}

// Dispatch handles one gesture. UP and DOWN move the selection, LEFT and
// RIGHT page horizontally by one character, or by hscroll.FastStep on a
// double-click.
func (v *Viewer) Dispatch(ev gesture.Event) {
	in := v.keys.Resolve(ev)
	step := 1
	switch in.Kind {
	case gesture.ShortClick:
	case gesture.DoubleClick:
		step = hscroll.FastStep
	default:
		return
	}
	switch in.Key {
	case focus.KeyUp:
		if in.Kind == gesture.ShortClick {
			v.ScrollUp()
		}
	case focus.KeyDown:
		if in.Kind == gesture.ShortClick {
			v.ScrollDown()
		}
	case focus.KeyRight:
		v.ScrollRight(step)
	case focus.KeyLeft:
		v.ScrollLeft(step)
	}
}

// Draw paints the visible lines and the scroll indicator.
func (v *Viewer) Draw(f *focus.Frame) {
	c := f.Canvas
	c.SetTextWrap(false)
	rows, cols := v.Rows(), v.Columns()
	v.pager.Clamp(v.MaxScroll())
	off := v.pager.Offset()
	mw := hscroll.Len(marker) * v.charWidth

	for i := 0; i < rows; i++ {
		idx := v.first + i
		if idx >= v.n {
			break
		}
		y := i * v.lineHeight
		if idx == v.selected {
			c.TextAt(0, y, surface.On, marker)
		}
		c.TextAt(mw, y, surface.On, hscroll.Slice(v.Line(idx), off, cols))
	}

	pos := viewport.Marker(v.selected, v.n, v.height)
	c.ScrollBar(v.width-2, 0, v.height, pos, v.n > rows)
}
