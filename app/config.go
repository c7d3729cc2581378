package app

import (
	"time"

	"keynav/hal"
	"keynav/navkit/gesture"
	"keynav/navkit/textview"
)

// Config selects the input policy and screen behavior of a System.
type Config struct {
	Thresholds gesture.Thresholds
	Buttons    []hal.Button

	// Debug logs every gesture.
	Debug bool

	// ResetOnBack puts the menu cursor at the top after going back.
	ResetOnBack bool

	// MaxLogLines bounds the event log screen.
	MaxLogLines int

	// PollInterval paces Run.
	PollInterval time.Duration
}

// DefaultConfig uses the five-way button layout and default thresholds.
func DefaultConfig() Config {
	return Config{
		Thresholds:   gesture.DefaultThresholds(),
		Buttons:      hal.DefaultButtons,
		MaxLogLines:  textview.DefaultMaxLines,
		PollInterval: 10 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.Buttons) == 0 {
		c.Buttons = d.Buttons
	}
	if c.MaxLogLines <= 0 {
		c.MaxLogLines = d.MaxLogLines
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	return c
}
