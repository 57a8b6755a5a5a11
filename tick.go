package astrajvcbridge

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// TickPeriod is the nominal JVC half-bit period the tick source should
// deliver events at (spec.md §6: 527µs ± 1%, ±5% the safe design target).
const TickPeriod = 527 * time.Microsecond

// TickFlag is the sole inter-domain synchronization primitive between the
// tick interrupt and the main loop (spec.md §3, §5): a single boolean,
// set by the interrupt and cleared by whichever side next observes it.
// Like the single byte it models, a tick posted while one is already
// pending is coalesced rather than queued — spec.md §7's "lost tick" is
// this coalescing, not a bug.
type TickFlag struct {
	pending atomic.Bool
}

// Post sets the flag, as the interrupt does on every tick.
func (f *TickFlag) Post() {
	f.pending.Store(true)
}

// Pending reports whether a tick is waiting to be observed, without
// clearing it.
func (f *TickFlag) Pending() bool {
	return f.pending.Load()
}

// WaitOne spins until a tick has been posted, then clears it — the
// wait_for_ticks(1) primitive of spec.md §4.4, and the only suspension
// point the main loop has (spec.md §5).
func (f *TickFlag) WaitOne() {
	for !f.pending.CompareAndSwap(true, false) {
		runtime.Gosched()
	}
}

// decodedValue is the single-byte shared cell the main loop writes its
// most recent classification into and the tick interrupt reads from
// (spec.md §5).
type decodedValue struct {
	v atomic.Int32
}

func (d *decodedValue) Store(b LogicalButton) { d.v.Store(int32(b)) }
func (d *decodedValue) Load() LogicalButton   { return LogicalButton(d.v.Load()) }

// Glue bundles the state shared between the tick interrupt context and the
// main-loop (dispatcher) context: the tick flag, the most recent
// classification, and the debouncer they both drive. It is the explicit
// interior-mutable cell Design Notes §9 calls for in place of bare global
// statics shared with an ISR.
type Glue struct {
	Flag      TickFlag
	Decoded   decodedValue
	Debouncer *Debouncer
}

// TickHandler is invoked once per hardware tick, in the interrupt context.
// It is the Go analogue of the ISR in spec.md §4.3: post the tick flag and
// advance the debouncer with the most recently classified value, so
// debounce timing is driven by interrupt cadence rather than main-loop
// jitter.
func (g *Glue) TickHandler() {
	g.Flag.Post()
	g.Debouncer.Sample(g.Decoded.Load())
}

// Wait consumes n ticks from the shared tick flag, one at a time. This is
// spec.md §4.4's wait_for_ticks(n): while it runs, the caller does nothing
// else, though the tick interrupt keeps firing in the background and keeps
// driving the debouncer (spec.md §4.4, §5). Both the jvc.Transmitter and
// the dispatcher's volume cooldown consume ticks this way.
func (g *Glue) Wait(n int) {
	for i := 0; i < n; i++ {
		g.Flag.WaitOne()
	}
}

// TickSource is the external collaborator of spec.md §4.3/§6: a hardware
// timer delivering a periodic event roughly every TickPeriod. Run calls fn
// once per tick until ctx is canceled.
type TickSource interface {
	Run(ctx context.Context, fn func())
}

// SoftwareTicker is a TickSource backed by a wall-clock timer. It is the
// portable default for both the real and dummy cmd/bridge platforms: real
// cycle-accurate interrupt timing is a property of the microcontroller
// target this was ported from, not of a Linux host, so a software timer is
// the honest substitute here (see SPEC_FULL.md §4).
type SoftwareTicker struct {
	Period time.Duration
}

// NewSoftwareTicker creates a SoftwareTicker with the given period.
func NewSoftwareTicker(period time.Duration) *SoftwareTicker {
	return &SoftwareTicker{Period: period}
}

func (s *SoftwareTicker) Run(ctx context.Context, fn func()) {
	t := time.NewTicker(s.Period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fn()
		}
	}
}
