// Package viewport computes which part of a vertical list is on screen.
package viewport

// Window is the visible slice [First, First+Count) of a list.
type Window struct {
	First int
	Count int
}

// Contains reports whether index i is visible.
func (w Window) Contains(i int) bool {
	return i >= w.First && i < w.First+w.Count
}

// Fit places a list of n variable-height items into avail pixels so the
// focused item is on screen.
//
// Starting from the focused item it extends upward while the running height,
// spacing included, still fits, then counts forward from that first item until
// the next item would only partially fit. An item taller than the viewport is
// still reported as the single visible item.
func Fit(n, focused, avail, spacing int, height func(i int) int) Window {
	if n <= 0 || height == nil {
		return Window{}
	}
	focused = clamp(focused, 0, n-1)
	if spacing < 0 {
		spacing = 0
	}

	first := focused
	total := height(focused)
	for first > 0 {
		h := height(first-1) + spacing
		if total+h > avail {
			break
		}
		total += h
		first--
	}

	count := 0
	y := 0
	for i := first; i < n; i++ {
		h := height(i)
		if y+h > avail {
			break
		}
		count++
		y += h + spacing
	}
	if need := focused - first + 1; count < need {
		count = need
	}
	return Window{First: first, Count: count}
}

// Follow returns the first visible row for fixed-height rows after the
// selection moved to focused. The window only moves as far as needed.
func Follow(first, focused, rows, n int) int {
	if n <= 0 {
		return 0
	}
	if rows < 1 {
		rows = 1
	}
	focused = clamp(focused, 0, n-1)
	if focused < first {
		first = focused
	}
	if focused >= first+rows {
		first = focused - rows + 1
	}
	return clamp(first, 0, focused)
}

// Rows returns how many rows of height lineHeight fit into avail.
func Rows(avail, lineHeight int) int {
	if lineHeight <= 0 || avail <= 0 {
		return 0
	}
	return avail / lineHeight
}

// Marker maps index in [0, total) onto a track of length pixels, returning
// the offset of the scroll-position marker.
func Marker(index, total, length int) int {
	if total <= 1 || length <= 1 {
		return 0
	}
	index = clamp(index, 0, total-1)
	return index * (length - 1) / (total - 1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
