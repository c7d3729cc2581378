package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"keynav/navkit/surface"
)

// PanicError is returned by a step that panicked.
type PanicError struct {
	Screen Screen
	Value  any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("app: panic on %s screen: %v", e.Screen, e.Value)
}

// guardedStep runs Step, turning a panic into a logged PanicError and a
// panic screen.
func (s *System) guardedStep() (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		perr := &PanicError{Screen: s.screen, Value: v}
		s.log.WriteLineString(perr.Error())
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line != "" {
				s.log.WriteLineString(line)
			}
		}
		s.drawPanic(perr)
		err = perr
	}()
	return s.Step()
}

// drawPanic paints the error once. A panel that panics again is left as is.
func (s *System) drawPanic(e *PanicError) {
	defer func() { _ = recover() }()
	c := s.canvas
	c.Clear()
	c.Rect(0, 0, c.Width(), c.Height(), surface.On)
	c.SetTextColor(surface.On)
	c.SetTextWrap(true)
	c.SetCursor(3, 3)
	c.Println("panic")
	c.Println(e.Screen.String())
	c.Print(fmt.Sprint(e.Value))
	_ = c.Flush()
}
