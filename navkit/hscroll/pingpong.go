// Package hscroll scrolls text that is wider than the space it is drawn in.
//
// Focused text bounces back and forth (PingPong), unfocused text is cut with
// an ellipsis (Truncate), and read-only viewers page manually (Pager).
// Offsets are in the caller's unit: characters for form fields, pixels for
// menu labels.
package hscroll

import "keynav/navkit/gesture"

// PingPong auto-scrolls an offset between 0 and a maximum, reversing at
// each end. With Pause set it dwells at each end before reversing.
type PingPong struct {
	Step     int
	Interval uint32
	Pause    uint32

	offset  int
	back    bool
	pausing bool
	last    gesture.Millis
	started bool
}

// Reset returns to offset 0 moving forward, timing from now.
func (p *PingPong) Reset(now gesture.Millis) {
	p.offset = 0
	p.back = false
	p.pausing = false
	p.last = now
	p.started = true
}

// Offset returns the current offset.
func (p *PingPong) Offset() int { return p.offset }

// Update advances the animation to now for content that can scroll up to
// max and returns the offset to draw with.
func (p *PingPong) Update(now gesture.Millis, max int) int {
	if max <= 0 {
		p.offset = 0
		p.back = false
		p.pausing = false
		return 0
	}
	if !p.started {
		p.Reset(now)
	}
	if p.offset > max {
		p.offset = max
	}
	if p.offset < 0 {
		p.offset = 0
	}

	elapsed := gesture.Since(now, p.last)
	if p.pausing {
		if elapsed >= p.Pause {
			p.pausing = false
			p.last = now
		}
		return p.offset
	}
	if elapsed < p.Interval {
		return p.offset
	}

	step := p.Step
	if step <= 0 {
		step = 1
	}
	if p.back {
		p.offset -= step
		if p.offset <= 0 {
			p.offset = 0
			p.back = false
			p.pausing = p.Pause > 0
		}
	} else {
		p.offset += step
		if p.offset >= max {
			p.offset = max
			p.back = true
			p.pausing = p.Pause > 0
		}
	}
	p.last = now
	return p.offset
}
