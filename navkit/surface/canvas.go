// Package surface is the immediate-mode 2D canvas every view paints through.
//
// A Canvas wraps any tinygo drivers.Displayer (the SH1106 OLED on hardware,
// an in-memory buffer on the host) and adds primitive shapes, cursor-addressed
// text on a fixed character grid, buffer clear and flush.
package surface

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	// On lights a pixel on a monochrome panel.
	On = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// Off clears a pixel.
	Off = color.RGBA{A: 0xff}
)

// Default text grid: one glyph cell is CharWidth x CharHeight pixels.
const (
	CharWidth  = 6
	CharHeight = 8
	baseline   = 7
)

// Clearer is implemented by displays with a clearable back buffer.
type Clearer interface {
	ClearBuffer()
}

// Canvas draws onto a drivers.Displayer.
type Canvas struct {
	d    drivers.Displayer
	font tinyfont.Fonter

	charW, charH, base int16

	cx, cy int16
	fg     color.RGBA
	wrap   bool
}

// New returns a canvas using the default 6x8 text grid.
func New(d drivers.Displayer) *Canvas {
	return &Canvas{
		d:     d,
		font:  &proggy.TinySZ8pt7b,
		charW: CharWidth,
		charH: CharHeight,
		base:  baseline,
		fg:    On,
	}
}

// SetFont replaces the font and its grid metrics. Non-positive metrics are ignored.
func (c *Canvas) SetFont(font tinyfont.Fonter, charW, charH, base int16) {
	if font == nil || charW <= 0 || charH <= 0 {
		return
	}
	c.font = font
	c.charW, c.charH, c.base = charW, charH, base
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int {
	w, _ := c.d.Size()
	return int(w)
}

// Height returns the surface height in pixels.
func (c *Canvas) Height() int {
	_, h := c.d.Size()
	return int(h)
}

// CharWidth returns the text cell width.
func (c *Canvas) CharWidth() int { return int(c.charW) }

// CharHeight returns the text cell height.
func (c *Canvas) CharHeight() int { return int(c.charH) }

// Clear blanks the whole surface.
func (c *Canvas) Clear() {
	if cl, ok := c.d.(Clearer); ok {
		cl.ClearBuffer()
		return
	}
	w, h := c.d.Size()
	_ = tinydraw.FilledRectangle(c.d, 0, 0, w, h, Off)
}

// Flush pushes the buffer to the panel.
func (c *Canvas) Flush() error {
	if err := c.d.Display(); err != nil {
		return fmt.Errorf("surface: display: %w", err)
	}
	return nil
}

// Pixel sets one pixel. Out-of-bounds coordinates are dropped.
func (c *Canvas) Pixel(x, y int, col color.RGBA) {
	w, h := c.d.Size()
	if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
		return
	}
	c.d.SetPixel(int16(x), int16(y), col)
}

func (c *Canvas) HLine(x, y, w int, col color.RGBA) {
	for i := 0; i < w; i++ {
		c.Pixel(x+i, y, col)
	}
}

func (c *Canvas) VLine(x, y, h int, col color.RGBA) {
	for i := 0; i < h; i++ {
		c.Pixel(x, y+i, col)
	}
}

func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	tinydraw.Line(c.clip(), int16(x0), int16(y0), int16(x1), int16(y1), col)
}

func (c *Canvas) Rect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = tinydraw.Rectangle(c.clip(), int16(x), int16(y), int16(w), int16(h), col)
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = tinydraw.FilledRectangle(c.clip(), int16(x), int16(y), int16(w), int16(h), col)
}

func (c *Canvas) Circle(x, y, r int, col color.RGBA) {
	tinydraw.Circle(c.clip(), int16(x), int16(y), int16(r), col)
}

func (c *Canvas) FillCircle(x, y, r int, col color.RGBA) {
	tinydraw.FilledCircle(c.clip(), int16(x), int16(y), int16(r), col)
}

func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int, col color.RGBA) {
	tinydraw.Triangle(c.clip(), int16(x0), int16(y0), int16(x1), int16(y1), int16(x2), int16(y2), col)
}

func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col color.RGBA) {
	tinydraw.FilledTriangle(c.clip(), int16(x0), int16(y0), int16(x1), int16(y1), int16(x2), int16(y2), col)
}

// clip returns a Displayer that drops out-of-bounds pixels.
func (c *Canvas) clip() drivers.Displayer { return clipped{c} }

type clipped struct{ c *Canvas }

func (d clipped) Size() (x, y int16)                  { return d.c.d.Size() }
func (d clipped) SetPixel(x, y int16, col color.RGBA) { d.c.Pixel(int(x), int(y), col) }
func (d clipped) Display() error                      { return nil }
