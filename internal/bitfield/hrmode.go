// internal/bitfield/hrmode.go
package bitfield

// HRMode classifies the heart-rate sensing source from bits 3/28/30.
type HRMode string

const (
	ModePolarStrap   HRMode = "Polar Strap"
	ModeIntegratedHR HRMode = "Integrated HR"
	ModeBluetoothHR  HRMode = "Bluetooth HR"
	ModeUnknown      HRMode = "Unknown/Custom"

	// ModeError marks a decode fault. Distinct from ModeUnknown,
	// which is a valid but unrecognized bit pattern.
	ModeError HRMode = "Error"
)

// Mode derives the HR mode from the named-bit subset.
// First match wins; no match falls through to ModeUnknown.
func Mode(named Named) HRMode {
	hr, okHR := named[BitHR]
	ech, okECH := named[BitECH]
	ble, okBLE := named[BitBLE]

	if !okHR || !okECH || !okBLE {
		return ModeError
	}

	switch {
	case hr && !ech && !ble:
		return ModePolarStrap
	case hr && ech && !ble:
		return ModeIntegratedHR
	case hr && !ech && ble:
		return ModeBluetoothHR
	default:
		return ModeUnknown
	}
}
