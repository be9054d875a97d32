// internal/telemetry/battery.go
package telemetry

import (
	"fmt"

	"github.com/tamzrod/diag-panel/internal/parse"
)

// BatterySummary is the degradation readout for one raw session file.
// HasData distinguishes a computed summary from a run that produced no
// battery records at all.
type BatterySummary struct {
	HasData bool   `json:"has_data"`
	First   string `json:"first_reading"`
	Last    string `json:"last_reading"`
	Elapsed string `json:"time_elapsed"`
	Drop    string `json:"percent_drop"`
}

// SummarizeBattery reduces a chronological point sequence.
//
// Elapsed is last minus first in seconds, reported as zero-padded
// HH:MM with unbounded hours. Drop is first minus last percent with
// the sign preserved: a battery that charged during the session
// reports a negative drop.
func SummarizeBattery(points []parse.BatteryPoint) BatterySummary {
	if len(points) == 0 {
		return BatterySummary{
			First:   "N/A",
			Last:    "N/A",
			Elapsed: "N/A",
			Drop:    "N/A",
		}
	}

	first := points[0]
	last := points[len(points)-1]

	totalMinutes := int(last.TimeS-first.TimeS) / 60

	return BatterySummary{
		HasData: true,
		First:   fmt.Sprintf("%.0f%%", first.Percent),
		Last:    fmt.Sprintf("%.0f%%", last.Percent),
		Elapsed: fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60),
		Drop:    fmt.Sprintf("%.0f%%", first.Percent-last.Percent),
	}
}
