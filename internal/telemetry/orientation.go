// internal/telemetry/orientation.go
package telemetry

import "strings"

// OrientationSummary is the per-reading breakdown of one orientation
// sample string.
type OrientationSummary struct {
	Sample      string  `json:"sample"`
	Okay        int     `json:"okay"`
	Reversed    int     `json:"reversed"`
	UpsideDown  int     `json:"upside_down"`
	Flat        int     `json:"flat"`
	OkayPercent float64 `json:"okay_percent"`
}

// SummarizeOrientation counts each reading code over the sample.
// An empty sample yields the zero summary with a 0.0 percentage,
// never a division fault.
func SummarizeOrientation(sample string) OrientationSummary {
	s := OrientationSummary{
		Sample:     sample,
		Okay:       strings.Count(sample, "+"),
		Reversed:   strings.Count(sample, "r"),
		UpsideDown: strings.Count(sample, "u"),
		Flat:       strings.Count(sample, "."),
	}

	if len(sample) > 0 {
		s.OkayPercent = float64(s.Okay) / float64(len(sample)) * 100
	}

	return s
}
