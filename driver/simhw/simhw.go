// Package simhw implements an in-memory simulation of the bridge's three
// hardware collaborators — the ADC, the one-wire output pin, and (via
// astrajvcbridge.SoftwareTicker) the tick source — standing in for real
// periph.io-backed hardware the way driver/mjolnir/sim.go's Simulator
// stands in for the real engraver board in the teacher codebase. It backs
// both cmd/bridge's non-Raspberry-Pi dummy platform and package tests that
// want to drive a full sample→classify→debounce→dispatch→transmit cycle
// without hardware.
package simhw

import "sync"

// ADC is a settable simulated ADC implementing astrajvcbridge.ADCReader.
type ADC struct {
	mu     sync.Mutex
	sample int
}

// NewADC creates an ADC that reads as Idle-range (centered around 910)
// until Set is called.
func NewADC() *ADC {
	return &ADC{sample: 910}
}

// Set changes the value the next ReadSample call returns.
func (a *ADC) Set(sample int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sample = sample
}

// ReadSample implements astrajvcbridge.ADCReader.
func (a *ADC) ReadSample() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sample, nil
}

// Pin is a simulated one-wire open-collector output line implementing
// jvc.OutputPin. It starts high (idle), and records every level it is set
// to so tests can assert on the emitted waveform shape (spec.md §8,
// scenario 6).
type Pin struct {
	mu          sync.Mutex
	high        bool
	transitions []bool
}

// NewPin creates a Pin in the idle-high state.
func NewPin() *Pin {
	return &Pin{high: true}
}

// Set implements jvc.OutputPin.
func (p *Pin) Set(high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.high = high
	p.transitions = append(p.transitions, high)
	return nil
}

// High reports the pin's current level.
func (p *Pin) High() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.high
}

// Transitions returns every level the pin has been set to, in order, since
// the Pin was created.
func (p *Pin) Transitions() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.transitions...)
}
