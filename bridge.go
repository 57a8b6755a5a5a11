package astrajvcbridge

import (
	"context"

	"astrajvcbridge.io/jvc"
)

// ADCReader is the external collaborator from spec.md §6: a single-ended
// ADC delivering a 10-bit unsigned sample on demand.
type ADCReader interface {
	ReadSample() (int, error)
}

// Bridge wires the classifier, debouncer, dispatcher, and transmitter
// together into the tick-synchronous main loop spec.md §2 describes:
// tick → sample ADC → classify → debounce → dispatch.
type Bridge struct {
	ADC        ADCReader
	Classifier *ClassifierTable
	Glue       *Glue
	Dispatcher *Dispatcher
}

// New builds a fully wired Bridge and its Glue from a Config and the two
// hardware collaborators spec.md §6 names beyond the tick source itself:
// an ADC and a one-wire output pin. The caller is responsible for driving
// the returned Glue's TickHandler from a TickSource (see cmd/bridge).
func New(cfg Config, adc ADCReader, pin jvc.OutputPin) (*Bridge, *Glue) {
	glue := &Glue{Debouncer: NewDebouncer(cfg.DebounceTicks, Idle)}
	tx := jvc.NewTransmitter(pin, glue)
	dispatcher := NewDispatcher(tx, cfg.Aux, cfg.Held)
	bridge := &Bridge{
		ADC:        adc,
		Classifier: cfg.Classifier,
		Glue:       glue,
		Dispatcher: dispatcher,
	}
	return bridge, glue
}

// Step runs exactly one pass of the main loop: wait for the next tick,
// sample and classify the input, debounce it, and dispatch. It blocks for
// the duration of any transmission or cooldown the dispatch triggers,
// during which the tick interrupt keeps running in the background
// (spec.md §4.4, §5).
func (b *Bridge) Step() error {
	b.Glue.Flag.WaitOne()

	sample, err := b.ADC.ReadSample()
	if err != nil {
		return err
	}
	decoded := b.Classifier.Classify(sample)
	b.Glue.Decoded.Store(decoded)

	stable := b.Glue.Debouncer.Sample(decoded)

	cooldown, err := b.Dispatcher.Step(stable)
	if err != nil {
		return err
	}
	if cooldown > 0 {
		b.Glue.Wait(cooldown)
	}
	return nil
}

// Run calls Step repeatedly until ctx is canceled.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.Step(); err != nil {
			return err
		}
	}
}
