package hscroll

import (
	"testing"

	"keynav/navkit/gesture"
)

func TestPingPongFullCycle(t *testing.T) {
	for _, pause := range []uint32{0, 1500} {
		p := PingPong{Step: 1, Interval: 200, Pause: pause}
		const max = 7

		now := gesture.Millis(1000)
		p.Reset(now)
		sawMax, left := false, false
		for i := 0; i < 10000; i++ {
			now += 50
			off := p.Update(now, max)
			if off < 0 || off > max {
				t.Fatalf("pause=%d: offset %d outside [0,%d]", pause, off, max)
			}
			if off == max {
				sawMax = true
			}
			if off != 0 {
				left = true
			}
			if left && off == 0 {
				break
			}
		}
		if !sawMax {
			t.Fatalf("pause=%d: never reached max", pause)
		}
		if p.Offset() != 0 {
			t.Fatalf("pause=%d: did not return to 0 (offset %d)", pause, p.Offset())
		}
	}
}

func TestPingPongTiming(t *testing.T) {
	p := PingPong{Step: 2, Interval: 80, Pause: 1500}
	p.Reset(0)

	if got := p.Update(79, 4); got != 0 {
		t.Fatalf("before interval offset = %d, want 0", got)
	}
	if got := p.Update(80, 4); got != 2 {
		t.Fatalf("first step offset = %d, want 2", got)
	}
	if got := p.Update(160, 4); got != 4 {
		t.Fatalf("second step offset = %d, want 4", got)
	}
	// Dwell at the end.
	if got := p.Update(1000, 4); got != 4 {
		t.Fatalf("during pause offset = %d, want 4", got)
	}
	if got := p.Update(1660, 4); got != 4 {
		t.Fatalf("pause end offset = %d, want 4", got)
	}
	if got := p.Update(1740, 4); got != 2 {
		t.Fatalf("reverse step offset = %d, want 2", got)
	}
}

func TestPingPongShrinkingContent(t *testing.T) {
	p := PingPong{Step: 1}
	p.Reset(0)
	for now := gesture.Millis(1); now < 10; now++ {
		p.Update(now, 20)
	}
	if got := p.Update(10, 3); got > 3 {
		t.Fatalf("offset %d exceeds new max 3", got)
	}
	if got := p.Update(11, 0); got != 0 {
		t.Fatalf("offset for fitting content = %d, want 0", got)
	}
}

func TestPingPongZeroStepClamped(t *testing.T) {
	p := PingPong{Step: -4, Interval: 10}
	p.Reset(0)
	if got := p.Update(10, 5); got != 1 {
		t.Fatalf("offset = %d, want 1", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"Settings", 20, "Settings"},
		{"Network configuration", 10, "Network .."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
		{"Ultimul element din listă", 10, "Ultimul .."},
		{"listă lungă", 5, "lis.."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.max, Ellipsis); got != tt.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		s             string
		offset, width int
		want          string
	}{
		{"abcdef", 0, 3, "abc"},
		{"abcdef", 4, 3, "ef"},
		{"abcdef", 6, 3, ""},
		{"abcdef", -2, 2, "ab"},
		{"scurtă", 3, 3, "rtă"},
		{"abc", 1, 0, ""},
	}
	for _, tt := range tests {
		if got := Slice(tt.s, tt.offset, tt.width); got != tt.want {
			t.Fatalf("Slice(%q, %d, %d) = %q, want %q", tt.s, tt.offset, tt.width, got, tt.want)
		}
	}
}

func TestPager(t *testing.T) {
	var p Pager
	p.Forward(1, 3)
	p.Forward(FastStep, 3)
	if p.Offset() != 3 {
		t.Fatalf("Offset() = %d, want 3 (clamped)", p.Offset())
	}
	p.Back(1, 3)
	if p.Offset() != 2 {
		t.Fatalf("Offset() = %d, want 2", p.Offset())
	}
	p.Back(FastStep, 3)
	if p.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0", p.Offset())
	}
	p.Forward(-9, 3)
	if p.Offset() != 0 {
		t.Fatalf("negative step moved offset to %d", p.Offset())
	}
	p.Forward(2, 5)
	p.Clamp(-1)
	if p.Offset() != 0 {
		t.Fatalf("Clamp(-1) left offset %d", p.Offset())
	}
	if MaxScroll(10, 4) != 6 || MaxScroll(3, 4) != 0 {
		t.Fatal("MaxScroll mismatch")
	}
}
