//go:build linux && arm

package main

import (
	"astrajvcbridge.io"
	"astrajvcbridge.io/driver/wheelstalk"
	"astrajvcbridge.io/jvc"
)

// mcp3008Channel is the MCP3008 input the resistor-ladder voltage divider
// is wired to.
const mcp3008Channel = 0

type rpiPlatform struct{}

func newPlatform() Platform {
	return rpiPlatform{}
}

func (rpiPlatform) ADC() (astrajvcbridge.ADCReader, func() error, error) {
	adc, err := wheelstalk.OpenADC(mcp3008Channel)
	if err != nil {
		return nil, nil, err
	}
	return adc, adc.Close, nil
}

func (rpiPlatform) OutputPin() (jvc.OutputPin, func() error, error) {
	pin, err := wheelstalk.OpenRemoteLine()
	if err != nil {
		return nil, nil, err
	}
	return pin, func() error { return nil }, nil
}

func (rpiPlatform) Ticks() astrajvcbridge.TickSource {
	return astrajvcbridge.NewSoftwareTicker(astrajvcbridge.TickPeriod)
}
