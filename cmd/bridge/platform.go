package main

import (
	"context"

	"astrajvcbridge.io"
	"astrajvcbridge.io/jvc"
)

// Platform supplies the hardware (or simulated) collaborators the bridge
// needs: an ADC, a one-wire output pin, and a tick source — the external
// collaborators spec.md §6 names. This mirrors the shape of the teacher
// codebase's cmd/controller Platform interface, split across
// platform_rpi.go and platform_dummy.go by build tag.
type Platform interface {
	ADC() (astrajvcbridge.ADCReader, func() error, error)
	OutputPin() (jvc.OutputPin, func() error, error)
	Ticks() astrajvcbridge.TickSource
}

// run wires a Platform's collaborators into a Bridge and runs it until ctx
// is canceled, idling the output line high on every exit path (spec.md §3:
// "the output line is idle-high between frames").
func run(ctx context.Context, p Platform, cfg astrajvcbridge.Config) error {
	adc, closeADC, err := p.ADC()
	if err != nil {
		return err
	}
	defer closeADC()

	pin, closePin, err := p.OutputPin()
	if err != nil {
		return err
	}
	defer closePin()
	defer pin.Set(true)

	bridge, glue := astrajvcbridge.New(cfg, adc, pin)
	bridge.Dispatcher.OnSend = logSend

	go p.Ticks().Run(ctx, glue.TickHandler)

	return bridge.Run(ctx)
}
