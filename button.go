// Package astrajvcbridge implements the firmware core of a bridge that
// reads a Holden Astra steering-wheel remote (a single resistor-ladder
// analog line) and re-emits the corresponding JVC car-radio remote
// commands on a one-wire line: classifier, debouncer, dispatcher, and the
// tick/glue state shared between the sampling interrupt and the main loop.
// The bit-exact JVC frame transmitter lives in the jvc subpackage.
package astrajvcbridge

// LogicalButton is the classified state of the steering-wheel remote line:
// exactly one value is current at any instant (spec.md §3).
type LogicalButton int

const (
	Idle LogicalButton = iota
	VolumeUp
	VolumeDown
	Source
	SeekForward
	SeekBackward
	Aux
)

func (b LogicalButton) String() string {
	switch b {
	case Idle:
		return "Idle"
	case VolumeUp:
		return "VolumeUp"
	case VolumeDown:
		return "VolumeDown"
	case Source:
		return "Source"
	case SeekForward:
		return "SeekForward"
	case SeekBackward:
		return "SeekBackward"
	case Aux:
		return "Aux"
	default:
		return "LogicalButton(?)"
	}
}

// JvcCode is a 7-bit JVC remote command, as understood by the wired
// remote input on JVC car radios (spec.md §3).
type JvcCode uint8

const (
	JvcVolUp           JvcCode = 0x04
	JvcVolDn           JvcCode = 0x05
	JvcMute            JvcCode = 0x06
	JvcSource          JvcCode = 0x08
	JvcSkipBack        JvcCode = 0x11
	JvcSkipForward     JvcCode = 0x12
	JvcSkipBackHeld    JvcCode = 0x13
	JvcSkipForwardHeld JvcCode = 0x14
	JvcSound           JvcCode = 0x0D
)

func (c JvcCode) String() string {
	switch c {
	case JvcVolUp:
		return "VolUp"
	case JvcVolDn:
		return "VolDn"
	case JvcMute:
		return "Mute"
	case JvcSource:
		return "Source"
	case JvcSkipBack:
		return "SkipBack"
	case JvcSkipForward:
		return "SkipForward"
	case JvcSkipBackHeld:
		return "SkipBackHeld"
	case JvcSkipForwardHeld:
		return "SkipForwardHeld"
	case JvcSound:
		return "Sound"
	default:
		return "JvcCode(?)"
	}
}

// AuxMapping is the JVC code the seventh logical button (Aux) emits; it is
// Mute or Sound depending on target radio variant (spec.md §3, §6).
type AuxMapping JvcCode
