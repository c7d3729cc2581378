// Package input connects gesture sampling to HAL pins.
package input

import (
	"fmt"

	"keynav/hal"
	"keynav/navkit/gesture"
)

// PinSampler configures every button channel as a pulled-up input and
// returns a sampler that reports a channel as pressed while its pin reads
// low. Channels without a pin, and read errors, count as released.
func PinSampler(g hal.GPIO, buttons []hal.Button) (gesture.Sampler, error) {
	if g == nil {
		return nil, fmt.Errorf("input: no gpio")
	}
	var pins [256]hal.GPIOPin
	for _, b := range buttons {
		p := g.Pin(int(b.Channel))
		if p == nil {
			return nil, fmt.Errorf("input: button %s: no pin on channel %d", b.Name, b.Channel)
		}
		if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			return nil, fmt.Errorf("input: button %s: %w", b.Name, err)
		}
		pins[b.Channel] = p
	}
	return func(channel uint8) bool {
		p := pins[channel]
		if p == nil {
			return false
		}
		level, err := p.Read()
		return err == nil && !level
	}, nil
}

// Register adds every button to e in order and returns their ids.
func Register(e *gesture.Engine, buttons []hal.Button) ([]gesture.SourceID, error) {
	ids := make([]gesture.SourceID, 0, len(buttons))
	for _, b := range buttons {
		id := e.Register(b.Name, b.Channel)
		if id == gesture.NoSource {
			return ids, fmt.Errorf("input: button %s: more than %d sources", b.Name, gesture.MaxSources)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
