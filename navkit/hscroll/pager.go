package hscroll

// FastStep is the page size of a fast horizontal scroll.
const FastStep = 5

// Pager is a manually driven horizontal offset clamped to [0, max].
type Pager struct {
	offset int
}

// Offset returns the current offset.
func (p *Pager) Offset() int { return p.offset }

// Forward reveals content further right by step, up to max.
func (p *Pager) Forward(step, max int) {
	if step < 0 {
		step = 0
	}
	p.offset += step
	p.Clamp(max)
}

// Back moves toward the start of the content by step.
func (p *Pager) Back(step, max int) {
	if step < 0 {
		step = 0
	}
	p.offset -= step
	p.Clamp(max)
}

// Clamp keeps the offset inside [0, max].
func (p *Pager) Clamp(max int) {
	if max < 0 {
		max = 0
	}
	if p.offset > max {
		p.offset = max
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// Reset returns to the start.
func (p *Pager) Reset() { p.offset = 0 }
