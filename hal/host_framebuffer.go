//go:build !tinygo

package hal

import (
	"image/color"
	"strings"
	"sync"
)

// hostFramebuffer is a 1bpp panel. Drawing goes to a back buffer; Display
// publishes it so renderers on other goroutines only see whole frames.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	back     []byte
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		back:   make([]byte, width*height),
		front:  make([]byte, width*height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= f.width || int(y) >= f.height {
		return
	}
	var v byte
	if lit(c) {
		v = 1
	}
	f.back[int(y)*f.width+int(x)] = v
}

func (f *hostFramebuffer) ClearBuffer() {
	for i := range f.back {
		f.back[i] = 0
	}
}

func (f *hostFramebuffer) Display() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presents++
	return nil
}

// snapshot copies the last displayed frame into dst and returns the number
// of frames displayed so far.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.presents
}

// ascii renders the last displayed frame with '#' for lit pixels.
func (f *hostFramebuffer) ascii() string {
	px := make([]byte, f.width*f.height)
	f.snapshot(px)
	var b strings.Builder
	b.Grow((f.width + 1) * f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if px[y*f.width+x] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
