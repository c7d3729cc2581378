//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// StepMillis advances the virtual clock per tick. Zero derives it
	// from Hz.
	StepMillis uint32

	// Fast runs ticks back to back instead of pacing them at Hz.
	Fast bool

	// Script drives the buttons. Without one they stay released.
	Script []Press

	// Dump writes the last displayed frame as ASCII art on exit.
	Dump bool

	Out io.Writer
}

// RunHeadless runs the UI on a virtual clock without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("headless: invalid hz: %d", cfg.Hz)
	}
	if cfg.StepMillis == 0 {
		cfg.StepMillis = uint32(d / time.Millisecond)
		if cfg.StepMillis == 0 {
			cfg.StepMillis = 1
		}
	}

	h := newHost(newVirtualTime(0), cfg.Script, cfg.Out)
	step := newApp(h)
	if cfg.Dump {
		defer func() { io.WriteString(cfg.Out, h.fb.ascii()) }()
	}

	var pace <-chan time.Time
	if !cfg.Fast {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var tick uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.step(cfg.StepMillis)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
