package hal

import "image/color"

// Panel colors used when a host renders the mono framebuffer.
var (
	PanelOn  = color.RGBA{R: 0xD8, G: 0xEE, B: 0xFF, A: 0xFF}
	PanelOff = color.RGBA{R: 0x06, G: 0x0A, B: 0x14, A: 0xFF}
)

// lit reports whether c turns a mono pixel on.
func lit(c color.RGBA) bool { return c.R|c.G|c.B != 0 }

// panelRGBA expands mono pixels (non-zero = lit) into RGBA bytes.
func panelRGBA(dst, px []byte) {
	for i, v := range px {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		c := PanelOff
		if v != 0 {
			c = PanelOn
		}
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}
}
