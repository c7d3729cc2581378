// Package gesture turns polled button levels into debounced click gestures.
//
// The engine is driven by a periodic, non-blocking poll loop. Every tick the
// caller supplies a monotonic millisecond timestamp and a sampler reporting
// whether each registered channel is currently pressed. Timing is relative
// only: all differences use unsigned wraparound subtraction, so the 32-bit
// millisecond counter may overflow freely.
package gesture

// Kind classifies a gesture.
type Kind uint8

const (
	None Kind = iota
	ShortClick
	LongPress
	DoubleClick
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case ShortClick:
		return "short-click"
	case LongPress:
		return "long-press"
	case DoubleClick:
		return "double-click"
	default:
		return "?"
	}
}

// Default policy thresholds in milliseconds.
const (
	// LongPressMillis is the hold time that must be exceeded for a long press.
	LongPressMillis = 800
	// ShortMillis is the ceiling for a press to count as a click.
	ShortMillis = 300
	// DoubleMillis is the double-click window measured from the first click.
	DoubleMillis = 400
)

// Millis is a wrapping millisecond timestamp.
type Millis uint32

// Since returns now-then, tolerating counter wraparound.
func Since(now, then Millis) uint32 { return uint32(now - then) }

// Thresholds groups the timing policy of an Engine.
type Thresholds struct {
	LongPress uint32
	Short     uint32
	Double    uint32
}

// DefaultThresholds returns the 800/300/400 ms policy.
func DefaultThresholds() Thresholds {
	return Thresholds{LongPress: LongPressMillis, Short: ShortMillis, Double: DoubleMillis}
}

func (t Thresholds) sanitized() Thresholds {
	d := DefaultThresholds()
	if t.LongPress == 0 {
		t.LongPress = d.LongPress
	}
	if t.Short == 0 {
		t.Short = d.Short
	}
	if t.Double == 0 {
		t.Double = d.Double
	}
	return t
}

// SourceID is the registration index of an input source.
type SourceID uint8

// NoSource marks an event not tied to any source.
const NoSource SourceID = 0xFF

// MaxSources is the number of sources an Engine accepts. Ids run from 0 to
// MaxSources-1 so none of them equals NoSource.
const MaxSources = int(NoSource)

// Event is one classified gesture.
type Event struct {
	Source  SourceID
	Name    string
	Channel uint8
	Kind    Kind
}

// Is reports whether ev is a gesture of kind k raised by source id.
func (ev Event) Is(id SourceID, k Kind) bool {
	return ev.Kind == k && ev.Source == id
}

// Sampler reports whether the input on channel is pressed.
type Sampler func(channel uint8) bool

type source struct {
	name    string
	channel uint8
}

type timing struct {
	pressStart        Millis
	lastClick         Millis
	waitingForRelease bool
	longPressReported bool
	clickPending      bool
	clickCount        uint8
}
