package astrajvcbridge

import "astrajvcbridge.io/jvc"

// VolumeCooldownTicks is the number of ticks of enforced idle the
// dispatcher waits after sending a volume code, holding the ~5 Hz
// auto-repeat rate spec.md §4.5 calls for instead of resending on every
// tick.
const VolumeCooldownTicks = 400

// HeldSeekPolicy selects which JVC code a sustained (held) seek button
// emits, resolving the variant disagreement spec.md §9 leaves as an open
// question: whether held forward-seek repeats the short code or emits the
// "held" code. It is a configuration value, not a compile-time branch, per
// Design Notes §9.
type HeldSeekPolicy struct {
	ForwardHeld  JvcCode
	BackwardHeld JvcCode
}

// Dispatcher is the top-level state machine: given each tick's debounced
// button, it decides which JVC code (and how often) to emit, distinguishing
// first-press, held, and idle (spec.md §4.5).
type Dispatcher struct {
	lastStable LogicalButton

	aux  AuxMapping
	held HeldSeekPolicy
	tx   *jvc.Transmitter

	// OnSend, if set, is called after every successful transmission; the
	// cmd/bridge binary uses it to log each emitted command.
	OnSend func(button LogicalButton, code JvcCode)
}

// NewDispatcher creates a Dispatcher sending through tx, using aux as the
// seventh button's code and held as the seek-hold policy. last_stable
// starts at Idle (spec.md §3).
func NewDispatcher(tx *jvc.Transmitter, aux AuxMapping, held HeldSeekPolicy) *Dispatcher {
	return &Dispatcher{lastStable: Idle, aux: aux, held: held, tx: tx}
}

// Step executes one tick's worth of dispatch logic for the given debounced
// button (spec.md §4.5's table) and returns the number of additional ticks
// the caller must consume from the tick source before sampling again — the
// volume cooldown — or 0 if none is owed.
func (d *Dispatcher) Step(stable LogicalButton) (cooldownTicks int, err error) {
	first := stable != d.lastStable
	d.lastStable = stable

	switch stable {
	case Idle:
		// Nothing to do.
	case VolumeUp:
		if err := d.send(stable, JvcVolUp); err != nil {
			return 0, err
		}
		cooldownTicks = VolumeCooldownTicks
	case VolumeDown:
		if err := d.send(stable, JvcVolDn); err != nil {
			return 0, err
		}
		cooldownTicks = VolumeCooldownTicks
	case Source:
		if first {
			if err := d.send(stable, JvcSource); err != nil {
				return 0, err
			}
		}
	case Aux:
		if first {
			if err := d.send(stable, JvcCode(d.aux)); err != nil {
				return 0, err
			}
		}
	case SeekForward:
		code := JvcSkipForward
		if !first {
			code = d.held.ForwardHeld
		}
		if err := d.send(stable, code); err != nil {
			return 0, err
		}
	case SeekBackward:
		code := JvcSkipBack
		if !first {
			code = d.held.BackwardHeld
		}
		if err := d.send(stable, code); err != nil {
			return 0, err
		}
	}
	return cooldownTicks, nil
}

func (d *Dispatcher) send(button LogicalButton, code JvcCode) error {
	if err := d.tx.Send(uint8(code)); err != nil {
		return err
	}
	if d.OnSend != nil {
		d.OnSend(button, code)
	}
	return nil
}
