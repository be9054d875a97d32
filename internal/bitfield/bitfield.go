// internal/bitfield/bitfield.go
package bitfield

import (
	"fmt"
	"strconv"
	"strings"
)

// Named flag bit indices.
// These values define the device contract and MUST NOT be configurable.

// ---- NAMED BITS ----

const (
	BitHR        = 3  // heart-rate sensing master switch
	BitDoubleOff = 24 // double button press to power off
	BitECH       = 28 // ECH heartrate pickup
	BitBLE       = 30 // BLE HR monitoring
)

var labels = map[int]string{
	BitHR:        "Enables HR",
	BitDoubleOff: "Double button to turn off",
	BitECH:       "Enables ECH heartrate pickup",
	BitBLE:       "Enables BLE HR monitoring",
}

// Entry is one row of the expanded flag table.
type Entry struct {
	Bit   int    `json:"bit"`
	On    bool   `json:"on"`
	Label string `json:"label"`
}

// Table holds exactly 64 entries, bit 0 first.
type Table []Entry

// Named is the subset of bits the dashboard surfaces by name,
// keyed by bit index.
type Named map[int]bool

// Decode parses a "0x"-prefixed hex flags string and expands it.
// Conversion failure returns an error, never a zeroed table.
func Decode(flagsHex string) (Table, Named, error) {
	s := strings.TrimSpace(flagsHex)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("bitfield: bad flags %q: %w", flagsHex, err)
	}

	table, named := DecodeValue(v)
	return table, named, nil
}

// DecodeValue expands a raw flags register.
// Pure. No IO. Always derivable from the register alone.
func DecodeValue(flags uint64) (Table, Named) {
	table := make(Table, 64)
	named := make(Named, len(labels))

	for i := 0; i < 64; i++ {
		on := (flags>>uint(i))&1 == 1

		label, fixed := labels[i]
		if !fixed {
			label = fmt.Sprintf("Bit %d", i)
		}

		table[i] = Entry{Bit: i, On: on, Label: label}

		if fixed {
			named[i] = on
		}
	}

	return table, named
}
