//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostTime is either wall-clock based or, for headless runs, a virtual
// counter advanced by the runner.
type hostTime struct {
	mu      sync.Mutex
	now     func() time.Time
	t0      time.Time
	virtual bool
	ms      uint32
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(now func() time.Time) *hostTime {
	if now == nil {
		now = time.Now
	}
	return &hostTime{now: now, t0: now()}
}

func newVirtualTime(start uint32) *hostTime {
	return &hostTime{virtual: true, ms: start}
}

func (t *hostTime) Millis() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.virtual {
		return t.ms
	}
	return uint32(t.now().Sub(t.t0).Milliseconds())
}

// step advances a virtual clock by ms. It is a no-op on a wall clock.
func (t *hostTime) step(ms uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.virtual {
		t.ms += ms
	}
}
