package astrajvcbridge

// Config is the single compile-time configuration record Design Notes §9
// calls for in place of preprocessor constants scattered through the
// source: the classifier table, the Aux code mapping, the debounce window,
// and the held-seek policy, all in one place. Variants are two named
// configurations (VariantRelaxed, VariantTight), not conditional
// compilation.
type Config struct {
	Name          string
	DebounceTicks uint8
	Classifier    *ClassifierTable
	Aux           AuxMapping
	Held          HeldSeekPolicy
}

// VariantRelaxed is the ±30-count-tolerance variant grounded directly in
// the original firmware (astrajvcbridge.c): Aux maps to Sound (0x0D), and
// held seeks follow the source's own "KD-X351BT" comment — forward-held
// re-emits the short skip-forward code, and only backward-held switches to
// the alternate "held" code.
func VariantRelaxed() Config {
	return Config{
		Name:          "relaxed",
		DebounceTicks: 10,
		Classifier: NewClassifierTable([]ClassifierEntry{
			{VolumeUp, 269, 30},
			{VolumeDown, 157, 30},
			{Source, 780, 30},
			{SeekForward, 516, 30},
			{SeekBackward, 648, 30},
			{Aux, 391, 30},
		}),
		Aux: AuxMapping(JvcSound),
		Held: HeldSeekPolicy{
			ForwardHeld:  JvcSkipForward,
			BackwardHeld: JvcSkipBackHeld,
		},
	}
}

// VariantTight is the ±15-count-tolerance variant: Aux maps to Mute
// (0x06), the volume centers swap order to keep the windows disjoint
// at the tighter tolerance (spec.md §3's narrowest-gap note), and both
// held seeks switch to their alternate "held" code.
func VariantTight() Config {
	return Config{
		Name:          "tight",
		DebounceTicks: 5,
		Classifier: NewClassifierTable([]ClassifierEntry{
			{VolumeUp, 264, 15},
			{VolumeDown, 295, 15},
			{Source, 775, 15},
			{SeekForward, 510, 15},
			{SeekBackward, 642, 15},
			{Aux, 385, 15},
		}),
		Aux: AuxMapping(JvcMute),
		Held: HeldSeekPolicy{
			ForwardHeld:  JvcSkipForwardHeld,
			BackwardHeld: JvcSkipBackHeld,
		},
	}
}
