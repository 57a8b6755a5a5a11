package astrajvcbridge

import "sync"

// Debouncer reports a stable LogicalButton only after the classified input
// has held constant for RequiredStableTicks consecutive samples, otherwise
// continuing to report the previously stable value (spec.md §4.2).
//
// It is invoked from two contexts: the tick interrupt and the main-loop
// dispatcher. Design Notes §9 re-architects the original's shared global
// plus interrupt-disable discipline as an explicit interior-mutable cell
// guarded by a critical section; here that cell is this struct and its
// mutex, taken by every call to Sample regardless of caller.
type Debouncer struct {
	mu sync.Mutex

	requiredStableTicks uint8
	idleValue           LogicalButton
	currentStable       LogicalButton
	candidate           LogicalButton
	candidateAgeTicks   uint8

	// OneShot is not read by Sample or by the Dispatcher: this firmware
	// always behaves as if OneShot is false, reporting the stable value
	// continuously while the button remains held.
	OneShot bool
}

// NewDebouncer creates a Debouncer whose current stable value starts at
// idleValue, as required at boot (spec.md §3).
func NewDebouncer(requiredStableTicks uint8, idleValue LogicalButton) *Debouncer {
	return &Debouncer{
		requiredStableTicks: requiredStableTicks,
		idleValue:           idleValue,
		currentStable:       idleValue,
		candidate:           idleValue,
	}
}

// Sample runs one step of the debounce state machine for the given
// classified input and returns the current stable value (spec.md §4.2).
// It is safe to call concurrently from the tick interrupt and the main
// loop: both call sites take the same lock, standing in for the original
// firmware's interrupt-disable/enable bracket around the main loop's call.
func (d *Debouncer) Sample(input LogicalButton) LogicalButton {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case input == d.currentStable:
		d.candidate = d.currentStable
		d.candidateAgeTicks = 0
	case input == d.candidate:
		if d.candidateAgeTicks < 255 {
			d.candidateAgeTicks++
		}
		if d.candidateAgeTicks >= d.requiredStableTicks {
			d.currentStable = d.candidate
			d.candidateAgeTicks = 0
		}
	default:
		d.candidate = input
		d.candidateAgeTicks = 1
	}
	return d.currentStable
}

// Stable returns the currently committed stable value without mutating any
// state.
func (d *Debouncer) Stable() LogicalButton {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentStable
}
