package protocol

import "fmt"

// PinMode is the one-byte pin configuration code carried by set-pin-mode.
type PinMode byte

// PinModeDigitalOut configures a pin as a digital output. It is the only
// mode the firmware currently accepts.
const PinModeDigitalOut PinMode = 0x01

// Valid reports whether m is in the closed set of accepted modes.
func (m PinMode) Valid() bool {
	return m == PinModeDigitalOut
}

// String returns the symbolic name of the mode.
func (m PinMode) String() string {
	switch m {
	case PinModeDigitalOut:
		return "digital_out"
	default:
		return fmt.Sprintf("pin mode 0x%02X", byte(m))
	}
}

// ParsePinMode resolves the symbolic form of a pin mode. Unrecognized names
// are a host-side argument error; nothing reaches the wire.
func ParsePinMode(s string) (PinMode, error) {
	switch s {
	case "digital_out":
		return PinModeDigitalOut, nil
	default:
		return 0, fmt.Errorf("wrong pin mode %q", s)
	}
}

// PinState is the one-byte drive code carried by digital-write.
type PinState byte

const (
	PinHigh   PinState = 0x10
	PinLow    PinState = 0x11
	PinToggle PinState = 0x12
)

// Valid reports whether s is in the closed set of accepted states.
func (s PinState) Valid() bool {
	switch s {
	case PinHigh, PinLow, PinToggle:
		return true
	default:
		return false
	}
}

// String returns the symbolic name of the state.
func (s PinState) String() string {
	switch s {
	case PinHigh:
		return "high"
	case PinLow:
		return "low"
	case PinToggle:
		return "toggle"
	default:
		return fmt.Sprintf("pin status 0x%02X", byte(s))
	}
}

// ParsePinState resolves the symbolic form of a pin state. Unrecognized
// names are a host-side argument error; nothing reaches the wire.
func ParsePinState(s string) (PinState, error) {
	switch s {
	case "high":
		return PinHigh, nil
	case "low":
		return PinLow, nil
	case "toggle":
		return PinToggle, nil
	default:
		return 0, fmt.Errorf("wrong pin status %q", s)
	}
}

// PinStateForLevel maps a boolean logic level to a pin state: true drives
// the pin high, false drives it low.
func PinStateForLevel(high bool) PinState {
	if high {
		return PinHigh
	}
	return PinLow
}
