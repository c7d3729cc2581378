//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const hostPinCount = 18

type hostHAL struct {
	logger  *hostLogger
	gpio    GPIO
	fb      *hostFramebuffer
	t       *hostTime
	buttons map[string]*virtualPin
}

// New returns a host HAL on the wall clock that logs to stdout.
func New() HAL {
	return newHost(newHostTime(), nil, os.Stdout)
}

// newHost builds GPIO0..GPIO17 as virtual pins. Button channels take the
// button name; with a press script they follow it instead of host input.
func newHost(t *hostTime, script []Press, w io.Writer) *hostHAL {
	const caps = GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown

	pins := make([]GPIOPin, hostPinCount)
	buttons := make(map[string]*virtualPin)
	for i := range pins {
		pins[i] = newVirtualPin(fmt.Sprintf("GPIO%d", i), caps)
	}
	for _, b := range DefaultButtons {
		if int(b.Channel) >= len(pins) {
			continue
		}
		if len(script) > 0 {
			pins[b.Channel] = newScriptPin(b.Name, t, script)
			continue
		}
		vp := newVirtualPin(b.Name, caps)
		pins[b.Channel] = vp
		buttons[b.Name] = vp
	}

	return &hostHAL{
		logger:  &hostLogger{w: w},
		gpio:    newVirtualGPIO(pins),
		fb:      newHostFramebuffer(DisplayWidth, DisplayHeight),
		t:       t,
		buttons: buttons,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.fb }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Clock() Clock     { return h.t }

// press grounds or releases the named button. Unknown names are ignored.
func (h *hostHAL) press(name string, down bool) {
	if p, ok := h.buttons[strings.ToUpper(name)]; ok {
		p.setGrounded(down)
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// logTail keeps the last few complete lines written to it.
type logTail struct {
	mu    sync.Mutex
	max   int
	lines []string
	part  []byte
}

func newLogTail(max int) *logTail { return &logTail{max: max} }

func (t *logTail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range p {
		if c != '\n' {
			t.part = append(t.part, c)
			continue
		}
		t.lines = append(t.lines, string(t.part))
		t.part = t.part[:0]
		if len(t.lines) > t.max {
			t.lines = t.lines[len(t.lines)-t.max:]
		}
	}
	return len(p), nil
}

func (t *logTail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}
