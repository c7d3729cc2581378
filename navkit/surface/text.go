package surface

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
)

// SetCursor moves the text cursor; (x, y) is the top-left of the next cell.
func (c *Canvas) SetCursor(x, y int) {
	c.cx, c.cy = int16(x), int16(y)
}

// Cursor returns the text cursor.
func (c *Canvas) Cursor() (x, y int) { return int(c.cx), int(c.cy) }

// SetTextColor selects the glyph color. Only lit glyph pixels are drawn.
func (c *Canvas) SetTextColor(col color.RGBA) { c.fg = col }

// SetTextWrap controls whether Print continues on the next row at the right edge.
func (c *Canvas) SetTextWrap(wrap bool) { c.wrap = wrap }

// Print draws s at the cursor and advances it one cell per rune.
func (c *Canvas) Print(s string) {
	w := int16(c.Width())
	for _, r := range s {
		if r == '\n' {
			c.cx = 0
			c.cy += c.charH
			continue
		}
		if c.wrap && c.cx+c.charW > w {
			c.cx = 0
			c.cy += c.charH
		}
		if r != ' ' {
			tinyfont.DrawChar(c.clip(), c.font, c.cx, c.cy+c.base, r, c.fg)
		}
		c.cx += c.charW
	}
}

// Println prints s and moves the cursor to the start of the next row.
func (c *Canvas) Println(s string) {
	c.Print(s)
	c.cx = 0
	c.cy += c.charH
}

func (c *Canvas) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// TextAt prints s at (x, y) in col, leaving the cursor after it.
func (c *Canvas) TextAt(x, y int, col color.RGBA, s string) {
	c.SetCursor(x, y)
	c.SetTextColor(col)
	c.Print(s)
}
