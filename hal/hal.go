package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Display is a monochrome panel with an off-screen buffer. SetPixel lights
// a pixel when any color channel is non-zero; Display pushes the buffer.
type Display interface {
	drivers.Displayer
	ClearBuffer()
}

// Clock is a free-running millisecond counter. It wraps at 2^32.
type Clock interface {
	Millis() uint32
}

// Button names a push button wired to a GPIO channel.
type Button struct {
	Name    string
	Channel uint8
}

// DefaultButtons is the five-way layout: buttons short to ground, read low
// when pressed.
var DefaultButtons = []Button{
	{Name: "UP", Channel: 4},
	{Name: "DOWN", Channel: 5},
	{Name: "CENTER", Channel: 15},
	{Name: "RIGHT", Channel: 16},
	{Name: "LEFT", Channel: 17},
}

// DisplayWidth and DisplayHeight are the panel size in pixels.
const (
	DisplayWidth  = 128
	DisplayHeight = 64
)

// HAL provides the only contact point between the UI and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	GPIO() GPIO
	Clock() Clock
}
