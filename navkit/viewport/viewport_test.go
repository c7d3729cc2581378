package viewport

import "testing"

func heights(hs ...int) func(int) int {
	return func(i int) int { return hs[i] }
}

func TestFitBackwardExtend(t *testing.T) {
	// Form-like layout: 64px viewport, 5px spacing.
	h := heights(29, 14, 22, 12)

	tests := []struct {
		focused int
		want    Window
	}{
		// 29 alone; 29+5+14=48 fits, +22+5 would not.
		{focused: 0, want: Window{First: 0, Count: 2}},
		{focused: 1, want: Window{First: 0, Count: 2}},
		// 22; +14+5=41; +29+5=75 too much.
		{focused: 2, want: Window{First: 1, Count: 3}},
		// 12; +22+5=39; +14+5=58; +29+5 too much.
		{focused: 3, want: Window{First: 1, Count: 3}},
	}
	for _, tt := range tests {
		got := Fit(4, tt.focused, 64, 5, h)
		if got != tt.want {
			t.Fatalf("Fit(focused=%d) = %+v, want %+v", tt.focused, got, tt.want)
		}
		if !got.Contains(tt.focused) {
			t.Fatalf("Fit(focused=%d) = %+v does not contain focus", tt.focused, got)
		}
	}
}

func TestFitOversizedItem(t *testing.T) {
	got := Fit(3, 1, 20, 2, heights(10, 40, 10))
	if got != (Window{First: 1, Count: 1}) {
		t.Fatalf("Fit = %+v, want {1 1}", got)
	}
}

func TestFitEmptyAndClamp(t *testing.T) {
	if got := Fit(0, 0, 64, 5, heights()); got != (Window{}) {
		t.Fatalf("Fit(empty) = %+v, want zero", got)
	}
	got := Fit(2, 9, 64, -3, heights(10, 10))
	if got.First != 0 || got.Count != 2 {
		t.Fatalf("Fit(clamped) = %+v, want {0 2}", got)
	}
}

func TestFitFocusAlwaysVisible(t *testing.T) {
	hs := []int{10, 29, 14, 22, 12, 8, 40, 14, 14, 22}
	for avail := 10; avail <= 80; avail += 7 {
		for f := range hs {
			w := Fit(len(hs), f, avail, 5, heights(hs...))
			if !w.Contains(f) {
				t.Fatalf("avail=%d focus=%d window=%+v excludes focus", avail, f, w)
			}
			if w.First < 0 || w.First+w.Count > len(hs) {
				t.Fatalf("avail=%d focus=%d window=%+v out of range", avail, f, w)
			}
		}
	}
}

func TestFollow(t *testing.T) {
	first := 0
	const rows, n = 6, 10
	for f := 0; f < n; f++ {
		first = Follow(first, f, rows, n)
		if f < first || f >= first+rows {
			t.Fatalf("down: focus %d outside [%d,%d)", f, first, first+rows)
		}
	}
	if first != 4 {
		t.Fatalf("first after scrolling down = %d, want 4", first)
	}
	for f := n - 1; f >= 0; f-- {
		first = Follow(first, f, rows, n)
		if f < first || f >= first+rows {
			t.Fatalf("up: focus %d outside [%d,%d)", f, first, first+rows)
		}
	}
	if first != 0 {
		t.Fatalf("first after scrolling up = %d, want 0", first)
	}
	if got := Follow(3, 0, 0, 0); got != 0 {
		t.Fatalf("Follow(empty) = %d, want 0", got)
	}
}

func TestRowsAndMarker(t *testing.T) {
	if got := Rows(64, 10); got != 6 {
		t.Fatalf("Rows(64,10) = %d, want 6", got)
	}
	if got := Rows(64, 0); got != 0 {
		t.Fatalf("Rows(64,0) = %d, want 0", got)
	}
	if got := Marker(0, 10, 64); got != 0 {
		t.Fatalf("Marker(0) = %d, want 0", got)
	}
	if got := Marker(9, 10, 64); got != 63 {
		t.Fatalf("Marker(last) = %d, want 63", got)
	}
	if got := Marker(3, 1, 64); got != 0 {
		t.Fatalf("Marker(single) = %d, want 0", got)
	}
}
