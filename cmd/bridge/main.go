// command bridge runs the Holden Astra steering-wheel remote to JVC
// wired-remote translator. It runs on a Raspberry Pi wired between the
// car's resistor-ladder harness and the radio's remote input, in the
// configuration described in SPEC_FULL.md.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"astrajvcbridge.io"
)

func main() {
	if err := runMain(); err != nil {
		fmt.Fprintf(os.Stderr, "astrajvcbridge: %v\n", err)
		os.Exit(1)
	}
}

func runMain() error {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	variant := flag.String("variant", "relaxed", "classifier variant: relaxed or tight")
	debounceTicks := flag.Uint("debounce-ticks", 0, "override the variant's debounce window in ticks (0 keeps the variant default)")
	flag.Parse()

	cfg, err := configForVariant(*variant)
	if err != nil {
		return err
	}
	if *debounceTicks != 0 {
		cfg.DebounceTicks = uint8(*debounceTicks)
	}

	log.Printf("astrajvcbridge: starting, variant=%s debounce=%d ticks", cfg.Name, cfg.DebounceTicks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, newPlatform(), cfg)
}

func configForVariant(name string) (astrajvcbridge.Config, error) {
	switch name {
	case "relaxed":
		return astrajvcbridge.VariantRelaxed(), nil
	case "tight":
		return astrajvcbridge.VariantTight(), nil
	default:
		return astrajvcbridge.Config{}, fmt.Errorf("astrajvcbridge: unknown variant %q", name)
	}
}

// logSend is the Dispatcher.OnSend hook: a line per emitted command, the
// only diagnostics output this firmware bridge has (spec.md §4.6).
func logSend(button astrajvcbridge.LogicalButton, code astrajvcbridge.JvcCode) {
	log.Printf("jvc: %s -> sent %s (0x%02x)", button, code, uint8(code))
}
