//go:build tinygo

package hal

import (
	"fmt"
	"machine"
	"sync"
	"time"
)

type tinyGoTime struct {
	t0 time.Time
}

func newTinyGoTime() *tinyGoTime { return &tinyGoTime{t0: time.Now()} }

func (t *tinyGoTime) Millis() uint32 {
	return uint32(time.Since(t.t0).Milliseconds())
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

const machinePinCount = 30

type machineGPIO struct {
	pins []GPIOPin
}

func newMachineGPIO() GPIO {
	pins := make([]GPIOPin, machinePinCount)
	for i := range pins {
		pins[i] = &machinePin{pin: machine.Pin(i), name: fmt.Sprintf("GP%d", i)}
	}
	for _, b := range DefaultButtons {
		if int(b.Channel) >= len(pins) {
			continue
		}
		if p, ok := pins[b.Channel].(*machinePin); ok {
			p.name = b.Name
		}
	}
	return &machineGPIO{pins: pins}
}

func (g *machineGPIO) PinCount() int { return len(g.pins) }

func (g *machineGPIO) Pin(id int) GPIOPin {
	if id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

type machinePin struct {
	mu   sync.Mutex
	pin  machine.Pin
	name string
	mode GPIOMode
	set  bool
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var cfg machine.PinConfig
	switch mode {
	case GPIOModeInput:
		switch pull {
		case GPIOPullNone:
			cfg.Mode = machine.PinInput
		case GPIOPullUp:
			cfg.Mode = machine.PinInputPullup
		case GPIOPullDown:
			cfg.Mode = machine.PinInputPulldown
		default:
			return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
		}
	case GPIOModeOutput:
		if pull != GPIOPullNone {
			return fmt.Errorf("gpio: pin %s: pull unsupported on output", p.name)
		}
		cfg.Mode = machine.PinOutput
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	p.pin.Configure(cfg)
	p.mode = mode
	p.set = true
	return nil
}

func (p *machinePin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.set {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.pin.Get(), nil
}

func (p *machinePin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.set || p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.pin.Set(level)
	return nil
}
