package astrajvcbridge

import "fmt"

// ClassifierEntry is one window of a ClassifierTable: a LogicalButton is
// reported when the ADC sample falls within [Center-Tolerance, Center+Tolerance]
// (spec.md §3, §4.1).
type ClassifierEntry struct {
	Button    LogicalButton
	Center    int
	Tolerance int
}

// bounds computes the window's inclusive bounds. The lower bound is
// clamped at zero rather than allowed to go negative, since Center-Tolerance
// can be negative for buttons near the bottom of the ADC range
// (spec.md §4.1, wraparound safety).
func (e ClassifierEntry) bounds() (lo, hi int) {
	lo = e.Center - e.Tolerance
	if lo < 0 {
		lo = 0
	}
	return lo, e.Center + e.Tolerance
}

// ClassifierTable is an ordered sequence of windows, probed in declaration
// order; the first matching window wins, and a sample matching none
// classifies as Idle (spec.md §4.1).
type ClassifierTable struct {
	entries []ClassifierEntry
}

// NewClassifierTable builds a table and verifies its windows are pairwise
// disjoint, as spec.md §3 requires "at construction." Overlapping windows
// are a configuration bug rather than a runtime condition, so this panics
// instead of returning an error.
func NewClassifierTable(entries []ClassifierEntry) *ClassifierTable {
	for i, a := range entries {
		aLo, aHi := a.bounds()
		for _, b := range entries[i+1:] {
			bLo, bHi := b.bounds()
			if aLo <= bHi && bLo <= aHi {
				panic(fmt.Sprintf("astrajvcbridge: classifier windows for %v [%d,%d] and %v [%d,%d] overlap",
					a.Button, aLo, aHi, b.Button, bLo, bHi))
			}
		}
	}
	return &ClassifierTable{entries: append([]ClassifierEntry(nil), entries...)}
}

// Classify maps a 10-bit ADC sample to a LogicalButton. It is a pure
// function with no side effects (spec.md §4.1).
func (t *ClassifierTable) Classify(sample int) LogicalButton {
	for _, e := range t.entries {
		lo, hi := e.bounds()
		if sample >= lo && sample <= hi {
			return e.Button
		}
	}
	return Idle
}
