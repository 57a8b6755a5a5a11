package jvc

import "testing"

// fakeTicks counts ticks waited without sleeping.
type fakeTicks struct{ total int }

func (f *fakeTicks) Wait(n int) { f.total += n }

// fakePin is a minimal OutputPin recording every level transition, the same
// role driver/simhw.Pin plays for package astrajvcbridge's tests.
type fakePin struct {
	transitions []bool
}

func (p *fakePin) Set(high bool) error {
	p.transitions = append(p.transitions, high)
	return nil
}

func TestSendRepeatsFrameThreeTimes(t *testing.T) {
	pin := &fakePin{}
	tx := NewTransmitter(pin, &fakeTicks{})
	if err := tx.Send(0x04); err != nil {
		t.Fatal(err)
	}

	// Each frame is: bus-reset, AGC-low, AGC-high (one transition each),
	// then the start bit, 7 address bits, 7 command bits and 2 stop bits,
	// each bit contributing exactly 2 transitions (low, then high) whatever
	// its value, since a one differs only in its longer wait. Rather than recompute the
	// exact count by hand, assert the three frames produced identical
	// transition sequences, since Send repeats the same command three
	// times (spec.md §4.4, §8 property 4).
	n := len(pin.transitions)
	if n == 0 || n%repeats != 0 {
		t.Fatalf("transition count %d is not evenly divisible by %d frame repeats", n, repeats)
	}
	frameLen := n / repeats
	first := pin.transitions[:frameLen]
	for i := 1; i < repeats; i++ {
		frame := pin.transitions[i*frameLen : (i+1)*frameLen]
		for j := range first {
			if frame[j] != first[j] {
				t.Fatalf("frame %d differs from frame 0 at transition %d", i, j)
			}
		}
	}
}

func TestFrameStartsWithBusResetAndAGC(t *testing.T) {
	pin := &fakePin{}
	ticks := &fakeTicks{}
	tx := NewTransmitter(pin, ticks)
	if err := tx.frame(0x00); err != nil {
		t.Fatal(err)
	}

	want := []bool{true, false, true}
	if len(pin.transitions) < len(want) {
		t.Fatalf("got %d transitions, want at least %d", len(pin.transitions), len(want))
	}
	for i, w := range want {
		if pin.transitions[i] != w {
			t.Errorf("transition %d = %v, want %v", i, pin.transitions[i], w)
		}
	}
}

func TestFrameEndsWithTwoStopBits(t *testing.T) {
	rec := &recorder{}
	tx := NewTransmitter(rec, rec)
	if err := tx.frame(0x00); err != nil {
		t.Fatal(err)
	}
	// The header (bus reset, AGC low, AGC high) is a Set and a Wait each;
	// after it come the start bit, 7 address bits, 7 command bits (all
	// zero for command 0x00) and the two stop bits, which must both be ones.
	bits := bitValues(t, rec.events[6:])
	n := len(bits)
	if n != 17 || !bits[n-2] || !bits[n-1] {
		t.Fatalf("frame did not end with two one-valued stop bits: %v", bits)
	}
}

func TestBitTimingRatio(t *testing.T) {
	// A one bit's high phase is three times a zero bit's (spec.md §8
	// property 6): one tick low, then one tick high for a zero, or
	// three ticks high for a one.
	pin := &fakePin{}
	zeroTicks := &fakeTicks{}
	tx := NewTransmitter(pin, zeroTicks)
	if err := tx.bit(false); err != nil {
		t.Fatal(err)
	}
	if zeroTicks.total != 2 {
		t.Errorf("zero bit waited %d ticks, want 2", zeroTicks.total)
	}

	oneTicks := &fakeTicks{}
	tx = NewTransmitter(pin, oneTicks)
	if err := tx.bit(true); err != nil {
		t.Fatal(err)
	}
	if oneTicks.total != 4 {
		t.Errorf("one bit waited %d ticks, want 4", oneTicks.total)
	}
}

// recorder implements both OutputPin and TickWaiter, logging pin-level
// changes and tick waits into one ordered sequence. A bit's value can only
// be recovered from the combination of the two: bit() sets the pin high
// exactly once per bit regardless of value and instead extends the high
// phase with an extra Wait(2) call, so a decoder watching Set calls alone
// cannot distinguish a one from a zero.
type recorder struct {
	events []recEvent
}

type recEvent struct {
	wait bool // true for a Wait call, false for a Set call
	pin  bool // Set's level, when wait is false
	n    int  // Wait's tick count, when wait is true
}

func (r *recorder) Set(high bool) error {
	r.events = append(r.events, recEvent{pin: high})
	return nil
}

func (r *recorder) Wait(n int) {
	r.events = append(r.events, recEvent{wait: true, n: n})
}

// bitValues replays a recorder's event log and returns, for each bit (a
// Set(false) followed by a Set(true) and the Wait calls up to the next
// Set(false) or end of log), whether its total high-phase tick count was 3
// (a one) or 1 (a zero).
func bitValues(t *testing.T, events []recEvent) []bool {
	t.Helper()
	var bits []bool
	i := 0
	for i < len(events) {
		if events[i].wait || events[i].pin {
			t.Fatalf("event %d: expected a Set(false) starting a bit, got %+v", i, events[i])
		}
		i++ // Set(false)
		if i >= len(events) || !events[i].wait {
			t.Fatalf("event %d: expected a Wait after Set(false)", i)
		}
		i++ // Wait(1) for the low phase
		if i >= len(events) || events[i].wait || !events[i].pin {
			t.Fatalf("event %d: expected Set(true) after the low-phase wait", i)
		}
		i++ // Set(true)
		highTicks := 0
		for i < len(events) && events[i].wait {
			highTicks += events[i].n
			i++
		}
		switch highTicks {
		case 1:
			bits = append(bits, false)
		case 3:
			bits = append(bits, true)
		default:
			t.Fatalf("bit ending at event %d had high-phase duration %d ticks, want 1 or 3", i, highTicks)
		}
	}
	return bits
}

func TestByte7TransmitsLSBFirst(t *testing.T) {
	rec := &recorder{}
	tx := NewTransmitter(rec, rec)
	// 0x47 = 0b1000111: bits 0..6 LSB first are 1,1,1,0,0,0,1.
	if err := tx.byte7(AddressByte); err != nil {
		t.Fatal(err)
	}

	want := []bool{true, true, true, false, false, false, true}
	got := bitValues(t, rec.events)
	if len(got) != len(want) {
		t.Fatalf("decoded %d bits, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAddressByteConstant(t *testing.T) {
	if AddressByte != 0x47 {
		t.Errorf("AddressByte = 0x%02x, want 0x47", AddressByte)
	}
}
