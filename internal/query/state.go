// internal/query/state.go
package query

import (
	"time"

	"github.com/tamzrod/diag-panel/internal/parse"
)

// State is the dashboard's query snapshot: every read category with
// its own error text. It is rebuilt wholesale on each rescan and
// read-only in between. The serving layer owns it; parsers never
// touch it.
type State struct {
	ScannedAt time.Time `json:"scanned_at"`

	Devices    []parse.Device `json:"devices"`
	DevicesErr string         `json:"devices_error,omitempty"`

	Radio    []parse.RadioConfig `json:"radio"`
	RadioErr string              `json:"radio_error,omitempty"`

	Keys    []parse.KeyRecord `json:"keys"`
	KeysErr string            `json:"keys_error,omitempty"`

	Sessions    []parse.SessionGroup `json:"sessions"`
	SessionsErr string               `json:"sessions_error,omitempty"`
}

// Refresh builds a fresh snapshot. Every category is attempted even
// when an earlier one fails; each failure stays scoped to its own
// category.
func (f *Facade) Refresh() *State {
	s := &State{ScannedAt: time.Now().UTC()}

	s.Devices, s.DevicesErr = f.Devices()
	s.Radio, s.RadioErr = f.RadioConfigs()
	s.Keys, s.KeysErr = f.PublicKeys()
	s.Sessions, s.SessionsErr = f.Sessions()

	return s
}
