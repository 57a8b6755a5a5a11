// Package wheelstalk implements the real Raspberry Pi hardware backend for
// the steering-wheel remote bridge: the resistor-ladder voltage read
// through an MCP3008 ADC over SPI, and the one-wire JVC output line driven
// through a GPIO pin. It follows the same periph.io wiring pattern as
// driver/wshat (GPIO buttons) and lcd (SPI display) in the teacher
// codebase — host.Init, a bcm283x pin for the output line, and
// spireg.Open to find the SPI bus (whose own chip select reaches the ADC).
package wheelstalk

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/bcm283x"
)

// RemoteLine is the GPIO pin wired to the JVC radio's remote input. It is
// open-drain-with-pull-up on the real harness: the bridge only ever drives
// it low or releases it high (spec.md §6). Left untyped (concrete
// *bcm283x.Pin rather than the gpio.PinOut interface) so FastOut is
// available, the same way lcd.go's LCD_DC is declared (lcd/lcd.go:74-77).
var RemoteLine = bcm283x.GPIO17

// ADC reads the steering-wheel resistor-ladder voltage through an MCP3008
// over SPI, the same bus family lcd.Open uses for the display.
type ADC struct {
	conn    spi.Conn
	port    spi.PortCloser
	channel int
}

// OpenADC opens the SPI port carrying the MCP3008 and readies it for
// single-ended 10-bit reads on the given channel (0-7).
func OpenADC(channel int) (*ADC, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("wheelstalk: %w", err)
	}
	p, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("wheelstalk: %w", err)
	}
	c, err := p.Connect(1*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("wheelstalk: %w", err)
	}
	return &ADC{conn: c, port: p, channel: channel}, nil
}

// Close releases the SPI port.
func (a *ADC) Close() error {
	return a.port.Close()
}

// ReadSample implements astrajvcbridge.ADCReader: it performs one MCP3008
// single-ended conversion and returns the 10-bit result (spec.md §6).
func (a *ADC) ReadSample() (int, error) {
	tx := []byte{0x01, byte(0x08|a.channel) << 4, 0x00}
	rx := make([]byte, len(tx))
	if err := a.conn.Tx(tx, rx); err != nil {
		return 0, fmt.Errorf("wheelstalk: adc read: %w", err)
	}
	sample := int(rx[1]&0x03)<<8 | int(rx[2])
	return sample, nil
}

// Pin adapts RemoteLine to jvc.OutputPin. It holds the concrete *bcm283x.Pin
// type, not the gpio.PinOut interface, because FastOut is a bcm283x
// extension rather than part of that interface.
type Pin struct {
	pin *bcm283x.Pin
}

// OpenRemoteLine configures RemoteLine as an output, idle-high, and
// returns a Pin driving it.
func OpenRemoteLine() (*Pin, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("wheelstalk: %w", err)
	}
	if err := RemoteLine.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("wheelstalk: %w", err)
	}
	return &Pin{pin: RemoteLine}, nil
}

// Set implements jvc.OutputPin. FastOut is used rather than Out because
// the transmitter's pulse widths are tick-counted and every call matters
// (spec.md §4.4's timing precision requirement); FastOut skips the error
// return Out provides, trading it for speed the way lcd.go's data/command
// strobing does.
func (p *Pin) Set(high bool) error {
	level := gpio.Low
	if high {
		level = gpio.High
	}
	p.pin.FastOut(level)
	return nil
}
