package hal

import (
	"fmt"
	"strings"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
//
// Implementations may return nil if GPIO is unsupported.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type virtualGPIO struct {
	pins []GPIOPin
}

func newVirtualGPIO(pins []GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return &virtualGPIO{pins: pins}
}

func (g *virtualGPIO) PinCount() int {
	if g == nil {
		return 0
	}
	return len(g.pins)
}

func (g *virtualGPIO) Pin(id int) GPIOPin {
	if g == nil || id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

type virtualPin struct {
	mu       sync.Mutex
	name     string
	caps     GPIOCaps
	mode     GPIOMode
	pull     GPIOPull
	level    bool
	grounded bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

// Read returns the pin level. An input shorted to ground reads low;
// otherwise its pull resistor decides, and a floating input keeps the last
// written level.
func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.mode {
	case GPIOModeOutput:
		return p.level, nil
	case GPIOModeInput:
	default:
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	if p.grounded {
		return false, nil
	}
	switch p.pull {
	case GPIOPullUp:
		return true, nil
	case GPIOPullDown:
		return false, nil
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// setGrounded connects the pin to ground, as a closed push button does.
func (p *virtualPin) setGrounded(g bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grounded = g
}

// Press holds a button down from Start up to, but not including, End.
// Times are Clock milliseconds.
type Press struct {
	Button string
	Start  uint32
	End    uint32
}

func (pr Press) active(now uint32) bool {
	return now-pr.Start < pr.End-pr.Start
}

// scriptPin is a pulled-up button input whose presses follow a fixed
// schedule on a clock.
type scriptPin struct {
	mu   sync.Mutex
	name string

	mode GPIOMode
	pull GPIOPull

	clock   Clock
	presses []Press
}

func newScriptPin(name string, clock Clock, presses []Press) GPIOPin {
	if strings.TrimSpace(name) == "" || clock == nil {
		return nil
	}
	var own []Press
	for _, pr := range presses {
		if strings.EqualFold(pr.Button, name) && pr.End != pr.Start {
			own = append(own, pr)
		}
	}
	return &scriptPin{
		name:    name,
		mode:    GPIOModeInput,
		pull:    GPIOPullUp,
		clock:   clock,
		presses: own,
	}
}

func (p *scriptPin) Name() string   { return p.name }
func (p *scriptPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (p *scriptPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	if pull != GPIOPullUp {
		return fmt.Errorf("gpio: pin %s: only pull-up supported", p.name)
	}
	p.mode = mode
	p.pull = pull
	return nil
}

func (p *scriptPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode != GPIOModeInput {
		return false, fmt.Errorf("gpio: pin %s: not configured for input", p.name)
	}
	now := p.clock.Millis()
	for _, pr := range p.presses {
		if pr.active(now) {
			return false, nil
		}
	}
	return true, nil
}

func (p *scriptPin) Write(level bool) error {
	_ = level
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}
