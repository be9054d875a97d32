// internal/parse/battery.go
package parse

import (
	"fmt"
	"strconv"
)

// BatteryPoint is one battery telemetry reading.
// Points are chronological as emitted; this layer does not reorder.
type BatteryPoint struct {
	TimeS   float64 `json:"time_s"`
	Voltage float64 `json:"voltage"`
	Percent float64 `json:"percent"`
}

// ParseBattery extracts every battery record from a viewer dump.
// Non-matching diagnostic lines between records are ignored.
// A conversion failure aborts the parse with an error; partial data is
// never returned with silently defaulted fields.
func ParseBattery(text string) ([]BatteryPoint, error) {
	var points []BatteryPoint

	for _, m := range batteryPattern.FindAllStringSubmatch(text, -1) {
		t, err := strconv.ParseFloat(group(batteryPattern, m, "time"), 64)
		if err != nil {
			return nil, fmt.Errorf("parse: bad battery time %q: %w", group(batteryPattern, m, "time"), err)
		}
		v, err := strconv.ParseFloat(group(batteryPattern, m, "voltage"), 64)
		if err != nil {
			return nil, fmt.Errorf("parse: bad battery voltage %q: %w", group(batteryPattern, m, "voltage"), err)
		}
		p, err := strconv.ParseFloat(group(batteryPattern, m, "percent"), 64)
		if err != nil {
			return nil, fmt.Errorf("parse: bad battery percent %q: %w", group(batteryPattern, m, "percent"), err)
		}

		points = append(points, BatteryPoint{TimeS: t, Voltage: v, Percent: p})
	}

	return points, nil
}
