//go:build tinygo

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/sh1106"
)

type tinyGoHAL struct {
	logger  *uartLogger
	gpio    GPIO
	display Display
	t       *tinyGoTime
}

// New returns the board HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Display: SH1106 128x64 on I2C1, GP6 (SDA) / GP7 (SCL), 400 kHz.
// Buttons: DefaultButtons channels are GPIO numbers, shorting to ground.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var display Display = nullDisplay{}
	if d, err := newSH1106(); err != nil {
		logger.WriteLineString("display: " + err.Error())
	} else {
		display = d
	}

	return &tinyGoHAL{
		logger:  logger,
		gpio:    newMachineGPIO(),
		display: display,
		t:       newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.display }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Clock() Clock     { return h.t }

func newSH1106() (Display, error) {
	bus := machine.I2C1
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP6,
		SCL:       machine.GP7,
	}); err != nil {
		return nil, err
	}
	d := sh1106.NewI2C(bus)
	d.Configure(sh1106.Config{Width: DisplayWidth, Height: DisplayHeight})
	d.ClearDisplay()
	return &d, nil
}

type nullDisplay struct{}

func (nullDisplay) Size() (x, y int16)                { return DisplayWidth, DisplayHeight }
func (nullDisplay) SetPixel(x, y int16, c color.RGBA) {}
func (nullDisplay) Display() error                    { return ErrNotImplemented }
func (nullDisplay) ClearBuffer()                      {}
