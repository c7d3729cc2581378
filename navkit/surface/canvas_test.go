package surface

import "testing"

func TestCanvasPixelClipping(t *testing.T) {
	m := NewMemory(8, 4)
	c := New(m)

	c.Pixel(2, 1, On)
	c.Pixel(-1, 0, On)
	c.Pixel(8, 0, On)
	c.Pixel(0, 4, On)

	if !m.Lit(2, 1) {
		t.Fatal("pixel (2,1) not lit")
	}
	if got := m.CountLit(0, 0, 8, 4); got != 1 {
		t.Fatalf("lit pixels = %d, want 1\n%s", got, m)
	}
}

func TestCanvasShapes(t *testing.T) {
	m := NewMemory(32, 16)
	c := New(m)

	c.FillRect(0, 0, 4, 3, On)
	if got := m.CountLit(0, 0, 32, 16); got != 12 {
		t.Fatalf("FillRect lit = %d, want 12\n%s", got, m)
	}

	c.Clear()
	if got := m.CountLit(0, 0, 32, 16); got != 0 {
		t.Fatalf("after Clear lit = %d, want 0", got)
	}

	c.HLine(0, 5, 10, On)
	c.VLine(20, 0, 16, On)
	if got := m.CountLit(0, 5, 10, 1); got != 10 {
		t.Fatalf("HLine lit = %d, want 10", got)
	}
	if got := m.CountLit(20, 0, 1, 16); got != 16 {
		t.Fatalf("VLine lit = %d, want 16", got)
	}

	c.Clear()
	c.RoundRect(2, 2, 20, 10, 3, On)
	if m.Lit(2, 2) {
		t.Fatal("rounded corner pixel lit")
	}
	if !m.Lit(10, 2) || !m.Lit(2, 6) {
		t.Fatalf("round rect edges missing\n%s", m)
	}

	c.Clear()
	c.FillRoundRect(0, 0, 12, 8, 3, On)
	if !m.Lit(6, 4) {
		t.Fatalf("filled round rect center not lit\n%s", m)
	}

	// Degenerate sizes draw nothing and do not panic.
	c.Clear()
	c.Rect(0, 0, 0, 5, On)
	c.FillRoundRect(0, 0, -3, 5, 2, On)
	if got := m.CountLit(0, 0, 32, 16); got != 0 {
		t.Fatalf("degenerate shapes lit = %d, want 0", got)
	}
}

func TestCanvasTextCursor(t *testing.T) {
	m := NewMemory(128, 64)
	c := New(m)

	c.SetCursor(4, 10)
	c.Print("AB")
	x, y := c.Cursor()
	if x != 4+2*CharWidth || y != 10 {
		t.Fatalf("Cursor() = (%d,%d), want (%d,10)", x, y, 4+2*CharWidth)
	}
	if m.CountLit(4, 10, 2*CharWidth, CharHeight+2) == 0 {
		t.Fatalf("no glyph pixels drawn\n%s", m)
	}

	c.Println("")
	x, y = c.Cursor()
	if x != 0 || y != 10+CharHeight {
		t.Fatalf("after Println Cursor() = (%d,%d), want (0,%d)", x, y, 10+CharHeight)
	}
}

func TestCanvasTextWrap(t *testing.T) {
	m := NewMemory(20, 32)
	c := New(m)

	c.SetTextWrap(true)
	c.SetCursor(0, 0)
	c.Print("ABCD")
	x, y := c.Cursor()
	if x != CharWidth || y != CharHeight {
		t.Fatalf("wrapped Cursor() = (%d,%d), want (%d,%d)", x, y, CharWidth, CharHeight)
	}

	c.SetTextWrap(false)
	c.SetCursor(0, 0)
	c.Print("ABCD")
	x, y = c.Cursor()
	if x != 4*CharWidth || y != 0 {
		t.Fatalf("unwrapped Cursor() = (%d,%d), want (%d,0)", x, y, 4*CharWidth)
	}
}

func TestCanvasFlush(t *testing.T) {
	m := NewMemory(4, 4)
	c := New(m)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if m.Flushes() != 1 {
		t.Fatalf("Flushes() = %d, want 1", m.Flushes())
	}
	if c.Width() != 4 || c.Height() != 4 {
		t.Fatalf("size = %dx%d, want 4x4", c.Width(), c.Height())
	}
}

func TestCanvasScrollBar(t *testing.T) {
	mem := NewMemory(16, 16)
	c := New(mem)

	c.ScrollBar(10, 0, 16, 0, false)
	if mem.CountLit(0, 0, 16, 16) != 8 {
		t.Fatalf("track pixels = %d, want 8", mem.CountLit(0, 0, 16, 16))
	}
	if !mem.Lit(10, 0) || mem.Lit(10, 1) {
		t.Fatal("track is not dotted")
	}

	c.ScrollBar(10, 0, 16, 8, true)
	if !mem.Lit(9, 7) || !mem.Lit(11, 9) || mem.Lit(9, 10) {
		t.Fatal("marker not centred on pos")
	}
}
