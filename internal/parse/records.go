// internal/parse/records.go
package parse

import (
	"strings"

	"github.com/tamzrod/diag-panel/internal/bitfield"
)

// Device is one scanned device with its decoded flag state.
// The flags register is the source of truth; Bits, Named and HRMode
// are always re-derived from it, never stored independently.
type Device struct {
	ID       string          `json:"id"`
	Family   string          `json:"family"`
	Firmware string          `json:"firmware"`
	FlagsHex string          `json:"flags"`
	Bits     bitfield.Table  `json:"-"`
	Named    bitfield.Named  `json:"named,omitempty"`
	HRMode   bitfield.HRMode `json:"hr_mode"`
}

// KeyRecord is one device's public key hash.
// The hash is kept exactly as emitted; only the shape is checked.
type KeyRecord struct {
	ID      string `json:"id"`
	KeyHash string `json:"key_hash"`
}

// CanonicalID strips leading zeros from a device id.
// A literal "0" stays "0" rather than collapsing to the empty string.
func CanonicalID(id string) string {
	s := strings.TrimLeft(id, "0")
	if s == "" && id != "" {
		return "0"
	}
	return s
}

// HasDeviceMarker reports whether a line carries the tool's device
// marker. Marker-bearing lines that fail the summary shape are parse
// failures, not silent drops.
func HasDeviceMarker(line string) bool {
	return strings.Contains(line, "ID:")
}

// ParseDeviceLine matches one device-summary line.
// matched=false means the line is not a summary line at all.
// matched=true with a non-nil error means the line matched but its
// flags register failed to decode; the device is still returned with
// HRMode set to the distinct error mode.
func ParseDeviceLine(line string) (Device, bool, error) {
	m := summaryPattern.FindStringSubmatch(line)
	if m == nil {
		return Device{}, false, nil
	}

	dev := Device{
		ID:       CanonicalID(group(summaryPattern, m, "id")),
		Family:   group(summaryPattern, m, "family"),
		Firmware: group(summaryPattern, m, "firmware"),
		FlagsHex: group(summaryPattern, m, "flags"),
	}

	table, named, err := bitfield.Decode(dev.FlagsHex)
	if err != nil {
		dev.HRMode = bitfield.ModeError
		return dev, true, err
	}

	dev.Bits = table
	dev.Named = named
	dev.HRMode = bitfield.Mode(named)
	return dev, true, nil
}

// ParseKeyLine matches one public-key line.
func ParseKeyLine(line string) (KeyRecord, bool) {
	m := keyPattern.FindStringSubmatch(line)
	if m == nil {
		return KeyRecord{}, false
	}

	return KeyRecord{
		ID:      CanonicalID(group(keyPattern, m, "id")),
		KeyHash: group(keyPattern, m, "hash"),
	}, true
}
