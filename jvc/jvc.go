// Package jvc implements the bit-exact JVC wired-remote frame transmitter:
// pulse-length encoding on a single open-collector line, paced in whole
// ticks consumed from a shared tick source (spec.md §4.4).
package jvc

// OutputPin is the external collaborator from spec.md §6: a one-wire,
// open-drain-with-pull-up digital output. Idle state is high; the
// transmitter drives it low explicitly and releases it (sets it high)
// otherwise (spec.md §3, §6).
type OutputPin interface {
	Set(high bool) error
}

// TickWaiter is the external collaborator the transmitter uses for
// cycle-accurate pacing: it consumes n ticks from the shared tick source,
// exactly as wait_for_ticks(n) does in spec.md §4.4. Every wait is counted
// in whole ticks; between waits the transmitter does nothing else.
type TickWaiter interface {
	Wait(n int)
}

const (
	// AddressByte is the constant JVC remote address transmitted with
	// every frame (spec.md §3, §6).
	AddressByte = 0x47

	// repeats is the number of times a frame is sent per Send call,
	// because some receivers reject single-shot frames (spec.md §4.4).
	repeats = 3

	busResetTicks = 1
	agcLowTicks   = 16
	agcHighTicks  = 8
)

// Transmitter emits JVC pulse-length-encoded remote frames on a single
// open-collector line, pacing every phase in whole ticks consumed from a
// TickWaiter (spec.md §4.4).
type Transmitter struct {
	Pin   OutputPin
	Ticks TickWaiter
}

// NewTransmitter creates a Transmitter driving pin, paced by ticks.
func NewTransmitter(pin OutputPin, ticks TickWaiter) *Transmitter {
	return &Transmitter{Pin: pin, Ticks: ticks}
}

// Send emits one command, repeated three times (spec.md §4.4, §8
// property 4). The address byte is always AddressByte.
func (t *Transmitter) Send(cmd uint8) error {
	for i := 0; i < repeats; i++ {
		if err := t.frame(cmd); err != nil {
			return err
		}
	}
	return nil
}

// frame emits one complete frame: bus reset, AGC, start bit, address byte,
// command byte, and two stop bits (spec.md §4.4).
func (t *Transmitter) frame(cmd uint8) error {
	if err := t.Pin.Set(true); err != nil { // Bus reset
		return err
	}
	t.Ticks.Wait(busResetTicks)

	if err := t.Pin.Set(false); err != nil { // AGC low
		return err
	}
	t.Ticks.Wait(agcLowTicks)

	if err := t.Pin.Set(true); err != nil { // AGC high
		return err
	}
	t.Ticks.Wait(agcHighTicks)

	if err := t.bit(true); err != nil { // start bit
		return err
	}
	if err := t.byte7(AddressByte); err != nil {
		return err
	}
	if err := t.byte7(cmd); err != nil {
		return err
	}
	if err := t.bit(true); err != nil { // stop bit 1
		return err
	}
	return t.bit(true) // stop bit 2
}

// byte7 transmits the low seven bits of b, LSB first; the eighth bit is
// unused (spec.md §4.4).
func (t *Transmitter) byte7(b uint8) error {
	for i := uint(0); i < 7; i++ {
		if err := t.bit(b&(1<<i) != 0); err != nil {
			return err
		}
	}
	return nil
}

// bit pulse-length-encodes one bit: the line goes low for one tick, then
// high for one tick (a zero) or three ticks (a one) — a one's high phase is
// exactly three times a zero's (spec.md §4.4, §8 property 6).
func (t *Transmitter) bit(one bool) error {
	if err := t.Pin.Set(false); err != nil {
		return err
	}
	t.Ticks.Wait(1)
	if err := t.Pin.Set(true); err != nil {
		return err
	}
	t.Ticks.Wait(1)
	if one {
		t.Ticks.Wait(2)
	}
	return nil
}
