package surface

import "image/color"

// RoundRect outlines a rectangle with corners of radius r.
func (c *Canvas) RoundRect(x, y, w, h, r int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(r, w, h)
	c.HLine(x+r, y, w-2*r, col)
	c.HLine(x+r, y+h-1, w-2*r, col)
	c.VLine(x, y+r, h-2*r, col)
	c.VLine(x+w-1, y+r, h-2*r, col)
	c.corner(x+r, y+r, r, 1, col)
	c.corner(x+w-r-1, y+r, r, 2, col)
	c.corner(x+w-r-1, y+h-r-1, r, 4, col)
	c.corner(x+r, y+h-r-1, r, 8, col)
}

// FillRoundRect fills a rectangle with corners of radius r.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = clampRadius(r, w, h)
	c.FillRect(x+r, y, w-2*r, h, col)
	c.fillCorner(x+w-r-1, y+r, r, 1, h-2*r-1, col)
	c.fillCorner(x+r, y+r, r, 2, h-2*r-1, col)
}

func clampRadius(r, w, h int) int {
	m := w
	if h < m {
		m = h
	}
	if r > m/2 {
		r = m / 2
	}
	if r < 0 {
		r = 0
	}
	return r
}

// corner draws quarter circles: 1=top-left 2=top-right 4=bottom-right 8=bottom-left.
func (c *Canvas) corner(x0, y0, r, mask int, col color.RGBA) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if mask&4 != 0 {
			c.Pixel(x0+x, y0+y, col)
			c.Pixel(x0+y, y0+x, col)
		}
		if mask&2 != 0 {
			c.Pixel(x0+x, y0-y, col)
			c.Pixel(x0+y, y0-x, col)
		}
		if mask&8 != 0 {
			c.Pixel(x0-y, y0+x, col)
			c.Pixel(x0-x, y0+y, col)
		}
		if mask&1 != 0 {
			c.Pixel(x0-y, y0-x, col)
			c.Pixel(x0-x, y0-y, col)
		}
	}
}

// fillCorner fills the right (1) or left (2) half-disc used by FillRoundRect.
func (c *Canvas) fillCorner(x0, y0, r, side, delta int, col color.RGBA) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if side&1 != 0 {
			c.VLine(x0+x, y0-y, 2*y+1+delta, col)
			c.VLine(x0+y, y0-x, 2*x+1+delta, col)
		}
		if side&2 != 0 {
			c.VLine(x0-x, y0-y, 2*y+1+delta, col)
			c.VLine(x0-y, y0-x, 2*x+1+delta, col)
		}
	}
}
