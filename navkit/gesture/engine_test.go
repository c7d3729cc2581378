package gesture

import "testing"

type press struct {
	ch         uint8
	start, end uint32
}

type stamped struct {
	at uint32
	ev Event
}

// run ticks e from 0 to until (inclusive) every step ms, offsetting all
// timestamps by base, and returns the non-None events of Tick.
func run(e *Engine, base Millis, presses []press, until, step uint32) []stamped {
	var out []stamped
	for t := uint32(0); t <= until; t += step {
		now := base + Millis(t)
		ev := e.Tick(now, func(ch uint8) bool {
			for _, p := range presses {
				if p.ch == ch && t >= p.start && t < p.end {
					return true
				}
			}
			return false
		})
		if ev.Kind != None {
			out = append(out, stamped{at: t, ev: ev})
		}
	}
	return out
}

func count(evs []stamped, k Kind) int {
	n := 0
	for _, s := range evs {
		if s.ev.Kind == k {
			n++
		}
	}
	return n
}

func TestLongPressHeld(t *testing.T) {
	e := New(DefaultThresholds())
	up := e.Register("UP", 4)

	evs := run(e, 0, []press{{ch: 4, start: 0, end: 2000}}, 900, 100)
	if len(evs) != 1 {
		t.Fatalf("events = %d, want 1 (%v)", len(evs), evs)
	}
	if evs[0].at != 900 || !evs[0].ev.Is(up, LongPress) {
		t.Fatalf("event = %+v at %d, want long-press at 900", evs[0].ev, evs[0].at)
	}
	if evs[0].ev.Name != "UP" || evs[0].ev.Channel != 4 {
		t.Fatalf("event source = %q/%d, want UP/4", evs[0].ev.Name, evs[0].ev.Channel)
	}
}

func TestLongPressReportedOnce(t *testing.T) {
	e := New(DefaultThresholds())
	e.Register("UP", 4)

	evs := run(e, 0, []press{{ch: 4, start: 0, end: 3000}}, 4000, 10)
	if got := count(evs, LongPress); got != 1 {
		t.Fatalf("long presses = %d, want 1", got)
	}
	if got := len(evs); got != 1 {
		t.Fatalf("events = %d, want 1 (release after long press is not a click)", got)
	}
}

func TestShortClick(t *testing.T) {
	e := New(DefaultThresholds())
	center := e.Register("CENTER", 15)

	evs := run(e, 0, []press{{ch: 15, start: 0, end: 150}}, 1000, 50)
	if len(evs) != 1 || !evs[0].ev.Is(center, ShortClick) {
		t.Fatalf("events = %+v, want one short-click", evs)
	}
	// Released at 150; the window closes at the first tick strictly past 550.
	if evs[0].at != 600 {
		t.Fatalf("short-click at %d, want 600", evs[0].at)
	}
}

func TestDoubleClick(t *testing.T) {
	e := New(DefaultThresholds())
	center := e.Register("CENTER", 15)

	presses := []press{
		{ch: 15, start: 0, end: 150},
		{ch: 15, start: 300, end: 350},
	}
	evs := run(e, 0, presses, 2000, 50)
	if len(evs) != 1 {
		t.Fatalf("events = %+v, want exactly one", evs)
	}
	if !evs[0].ev.Is(center, DoubleClick) || evs[0].at != 350 {
		t.Fatalf("event = %+v at %d, want double-click at 350", evs[0].ev, evs[0].at)
	}
	if got := count(evs, ShortClick); got != 0 {
		t.Fatalf("short clicks = %d, want 0", got)
	}
}

func TestSecondClickOutsideWindow(t *testing.T) {
	e := New(DefaultThresholds())
	e.Register("CENTER", 15)

	presses := []press{
		{ch: 15, start: 0, end: 100},
		{ch: 15, start: 700, end: 800},
	}
	evs := run(e, 0, presses, 2000, 50)
	if got := count(evs, ShortClick); got != 2 {
		t.Fatalf("short clicks = %d, want 2 (%+v)", got, evs)
	}
	if got := count(evs, DoubleClick); got != 0 {
		t.Fatalf("double clicks = %d, want 0", got)
	}
}

func TestSlowReleaseIsNotAClick(t *testing.T) {
	e := New(DefaultThresholds())
	e.Register("CENTER", 15)

	evs := run(e, 0, []press{{ch: 15, start: 0, end: 500}}, 2000, 50)
	if len(evs) != 0 {
		t.Fatalf("events = %+v, want none", evs)
	}
}

func TestLongPressCancelsPendingClick(t *testing.T) {
	e := New(DefaultThresholds())
	down := e.Register("DOWN", 5)

	presses := []press{
		{ch: 5, start: 0, end: 100},
		{ch: 5, start: 200, end: 1200},
	}
	evs := run(e, 0, presses, 3000, 50)
	if len(evs) != 1 {
		t.Fatalf("events = %+v, want only the long press", evs)
	}
	if !evs[0].ev.Is(down, LongPress) || evs[0].at != 1050 {
		t.Fatalf("event = %+v at %d, want long-press at 1050", evs[0].ev, evs[0].at)
	}
}

func TestLastEventWinsAcrossSources(t *testing.T) {
	e := New(DefaultThresholds())
	e.Register("UP", 4)
	down := e.Register("DOWN", 5)

	presses := []press{
		{ch: 4, start: 0, end: 100},
		{ch: 5, start: 0, end: 100},
	}
	evs := run(e, 0, presses, 1000, 50)
	if len(evs) != 1 || !evs[0].ev.Is(down, ShortClick) {
		t.Fatalf("events = %+v, want one DOWN short-click", evs)
	}
}

func TestTickAllKeepsSimultaneousEvents(t *testing.T) {
	e := New(DefaultThresholds())
	up := e.Register("UP", 4)
	down := e.Register("DOWN", 5)

	var all []Event
	for tm := uint32(0); tm <= 1000; tm += 50 {
		all = e.TickAll(Millis(tm), func(ch uint8) bool { return tm < 100 }, all)
	}
	if len(all) != 2 {
		t.Fatalf("events = %+v, want 2", all)
	}
	if !all[0].Is(up, ShortClick) || !all[1].Is(down, ShortClick) {
		t.Fatalf("events = %+v, want UP then DOWN short-clicks", all)
	}
}

func TestWraparound(t *testing.T) {
	e := New(DefaultThresholds())
	center := e.Register("CENTER", 15)

	base := Millis(0xFFFFFFFF - 120)
	presses := []press{
		{ch: 15, start: 0, end: 150},
		{ch: 15, start: 300, end: 350},
	}
	evs := run(e, base, presses, 2000, 50)
	if len(evs) != 1 || !evs[0].ev.Is(center, DoubleClick) {
		t.Fatalf("events = %+v, want one double-click across wraparound", evs)
	}

	e = New(DefaultThresholds())
	e.Register("CENTER", 15)
	evs = run(e, base, []press{{ch: 15, start: 0, end: 2000}}, 900, 100)
	if len(evs) != 1 || evs[0].ev.Kind != LongPress || evs[0].at != 900 {
		t.Fatalf("events = %+v, want long-press at 900 across wraparound", evs)
	}
}

func TestNoneTickAndNilSampler(t *testing.T) {
	e := New(Thresholds{})
	if e.Thresholds() != DefaultThresholds() {
		t.Fatalf("Thresholds() = %+v, want defaults", e.Thresholds())
	}
	e.Register("UP", 4)
	ev := e.Tick(10, nil)
	if ev.Kind != None || ev.Source != NoSource {
		t.Fatalf("Tick(nil) = %+v, want none", ev)
	}
}

func TestLookup(t *testing.T) {
	e := New(DefaultThresholds())
	e.Register("UP", 4)
	id := e.Register("LEFT", 17)

	got, ok := e.Lookup("LEFT")
	if !ok || got != id {
		t.Fatalf("Lookup(LEFT) = %d, %v; want %d, true", got, ok, id)
	}
	if _, ok := e.Lookup("NOPE"); ok {
		t.Fatal("Lookup(NOPE) ok = true, want false")
	}
	if e.Name(id) != "LEFT" || e.Name(9) != "" {
		t.Fatalf("Name() mismatch")
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
}

func TestRegisterLimit(t *testing.T) {
	e := New(DefaultThresholds())
	for i := 0; i < MaxSources; i++ {
		if id := e.Register("S", uint8(i)); id != SourceID(i) {
			t.Fatalf("Register #%d = %d", i, id)
		}
	}
	if id := e.Register("extra", 0); id != NoSource {
		t.Fatalf("Register past the limit = %d, want NoSource", id)
	}
	if e.Len() != MaxSources {
		t.Fatalf("Len() = %d, want %d", e.Len(), MaxSources)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		None:        "none",
		ShortClick:  "short-click",
		LongPress:   "long-press",
		DoubleClick: "double-click",
		Kind(9):     "?",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
