// internal/parse/radio.go
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// RadioClass is the derived classification of a tx/rx code pair.
type RadioClass string

const (
	RadioDefault     RadioClass = "Default"
	RadioAlternative RadioClass = "Alternative"
	RadioUnknown     RadioClass = "Unknown"
)

// RadioConfig is one device's 6.5 GHz configuration.
// Raw keeps the original line for display and audit.
type RadioConfig struct {
	ID      string     `json:"id"`
	TX      int        `json:"tx"`
	RX      int        `json:"rx"`
	Class   RadioClass `json:"class"`
	Display string     `json:"config_type"`
	Raw     string     `json:"raw"`
}

// ClassifyRadio is a pure function of the code pair.
// It must be recomputed on every parse, never cached apart from tx/rx.
func ClassifyRadio(tx, rx int) (RadioClass, string) {
	switch {
	case tx == 9 && rx == 9:
		return RadioDefault, "Default (tx=9, rx=9)"
	case tx == 3 && rx == 3:
		return RadioAlternative, "Alternative (tx=3, rx=3)"
	default:
		return RadioUnknown, fmt.Sprintf("Unknown (tx=%d, rx=%d)", tx, rx)
	}
}

// ParseRadioLine matches one radio-config line.
// matched=true with a non-nil error means a numeric field failed to
// convert; the failure propagates, it is never defaulted.
func ParseRadioLine(line string) (RadioConfig, bool, error) {
	m := radioPattern.FindStringSubmatch(line)
	if m == nil {
		return RadioConfig{}, false, nil
	}

	tx, err := strconv.Atoi(group(radioPattern, m, "tx"))
	if err != nil {
		return RadioConfig{}, true, fmt.Errorf("parse: bad txCode in %q: %w", line, err)
	}
	rx, err := strconv.Atoi(group(radioPattern, m, "rx"))
	if err != nil {
		return RadioConfig{}, true, fmt.Errorf("parse: bad rxCode in %q: %w", line, err)
	}

	class, display := ClassifyRadio(tx, rx)

	return RadioConfig{
		ID:      CanonicalID(group(radioPattern, m, "id")),
		TX:      tx,
		RX:      rx,
		Class:   class,
		Display: display,
		Raw:     strings.TrimSpace(line),
	}, true, nil
}
