package gesture

// Engine classifies gestures for a fixed table of sources.
//
// Sources are processed in registration order. Tick keeps only the last
// non-None event raised during a tick; TickAll keeps all of them.
// An Engine is not safe for concurrent use.
type Engine struct {
	th      Thresholds
	sources []source
	states  []timing
}

// New returns an engine using th. Zero thresholds fall back to the defaults.
func New(th Thresholds) *Engine {
	return &Engine{th: th.sanitized()}
}

// Thresholds returns the policy in effect.
func (e *Engine) Thresholds() Thresholds { return e.th }

// Register adds a source and returns its id. Registering the same channel
// twice yields two independent sources. Once MaxSources are registered,
// further registrations are ignored and return NoSource.
func (e *Engine) Register(name string, channel uint8) SourceID {
	if len(e.sources) >= MaxSources {
		return NoSource
	}
	e.sources = append(e.sources, source{name: name, channel: channel})
	e.states = append(e.states, timing{})
	return SourceID(len(e.sources) - 1)
}

// Len returns the number of registered sources.
func (e *Engine) Len() int { return len(e.sources) }

// Name returns the registered name of id, or "" if unknown.
func (e *Engine) Name(id SourceID) string {
	if int(id) >= len(e.sources) {
		return ""
	}
	return e.sources[id].name
}

// Lookup returns the id registered under name.
func (e *Engine) Lookup(name string) (SourceID, bool) {
	for i := range e.sources {
		if e.sources[i].name == name {
			return SourceID(i), true
		}
	}
	return NoSource, false
}

// Tick samples every source once and returns the last gesture raised.
func (e *Engine) Tick(now Millis, sample Sampler) Event {
	last := Event{Source: NoSource}
	for i := range e.sources {
		if k := e.step(i, now, sample); k != None {
			last = e.event(i, k)
		}
	}
	return last
}

// TickAll samples every source once and appends each raised gesture to dst.
func (e *Engine) TickAll(now Millis, sample Sampler, dst []Event) []Event {
	for i := range e.sources {
		if k := e.step(i, now, sample); k != None {
			dst = append(dst, e.event(i, k))
		}
	}
	return dst
}

func (e *Engine) event(i int, k Kind) Event {
	src := e.sources[i]
	return Event{Source: SourceID(i), Name: src.name, Channel: src.channel, Kind: k}
}

func (e *Engine) step(i int, now Millis, sample Sampler) Kind {
	src := e.sources[i]
	s := &e.states[i]

	pressed := false
	if sample != nil {
		pressed = sample(src.channel)
	}

	out := None
	if pressed {
		if !s.waitingForRelease {
			s.pressStart = now
			s.waitingForRelease = true
			s.longPressReported = false
		}
		if !s.longPressReported && Since(now, s.pressStart) > e.th.LongPress {
			s.longPressReported = true
			s.clickCount = 0
			s.clickPending = false
			out = LongPress
		}
		return out
	}

	if s.waitingForRelease {
		s.waitingForRelease = false
		if Since(now, s.pressStart) < e.th.Short && !s.longPressReported {
			if s.clickCount < 0xFF {
				s.clickCount++
			}
			switch {
			case s.clickCount == 1:
				s.lastClick = now
				s.clickPending = true
			case s.clickCount == 2 && Since(now, s.lastClick) < e.th.Double:
				s.clickPending = false
				s.clickCount = 0
				out = DoubleClick
			}
		}
	}

	if s.clickPending && Since(now, s.lastClick) > e.th.Double {
		s.clickPending = false
		if s.clickCount == 1 {
			out = ShortClick
		}
		s.clickCount = 0
	}
	return out
}
