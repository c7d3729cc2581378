package surface

// ScrollBar draws a dotted vertical track of height h at column x and, when
// marker is set, a 3x3 marker centred pos pixels below y.
func (c *Canvas) ScrollBar(x, y, h, pos int, marker bool) {
	for dy := 0; dy < h; dy += 2 {
		c.Pixel(x, y+dy, On)
	}
	if marker {
		c.FillRect(x-1, y+pos-1, 3, 3, On)
	}
}
