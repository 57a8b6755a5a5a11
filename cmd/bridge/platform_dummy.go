//go:build !linux || !arm

package main

import (
	"astrajvcbridge.io"
	"astrajvcbridge.io/driver/simhw"
	"astrajvcbridge.io/jvc"
)

// dummyPlatform runs the bridge against a simulated ADC and output pin,
// for development off the Raspberry Pi target (matching the role
// cmd/controller/platform_dummy.go plays in the teacher codebase).
type dummyPlatform struct{}

func newPlatform() Platform {
	return dummyPlatform{}
}

func (dummyPlatform) ADC() (astrajvcbridge.ADCReader, func() error, error) {
	return simhw.NewADC(), func() error { return nil }, nil
}

func (dummyPlatform) OutputPin() (jvc.OutputPin, func() error, error) {
	pin := simhw.NewPin()
	return pin, func() error { return nil }, nil
}

func (dummyPlatform) Ticks() astrajvcbridge.TickSource {
	return astrajvcbridge.NewSoftwareTicker(astrajvcbridge.TickPeriod)
}
