package hscroll

import "unicode/utf8"

// Ellipsis is the marker appended to truncated labels.
const Ellipsis = ".."

// Len returns the length of s in characters.
func Len(s string) int { return utf8.RuneCountInString(s) }

// Slice returns up to width characters of s starting at character offset.
func Slice(s string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	start, n := -1, 0
	for i := range s {
		if n == offset {
			start = i
		}
		if n == offset+width {
			return s[start:i]
		}
		n++
	}
	if start < 0 {
		return ""
	}
	return s[start:]
}

// Truncate fits s into max characters, replacing its tail with marker when
// it does not fit.
func Truncate(s string, max int, marker string) string {
	if max <= 0 {
		return ""
	}
	if Len(s) <= max {
		return s
	}
	keep := max - Len(marker)
	if keep <= 0 {
		return Slice(s, 0, max)
	}
	return Slice(s, 0, keep) + marker
}

// MaxScroll is the largest useful offset for content of length n shown
// width characters at a time.
func MaxScroll(n, width int) int {
	if width < 0 {
		width = 0
	}
	if n <= width {
		return 0
	}
	return n - width
}
