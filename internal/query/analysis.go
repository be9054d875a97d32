// internal/query/analysis.go
package query

import (
	"github.com/tamzrod/diag-panel/internal/parse"
	"github.com/tamzrod/diag-panel/internal/telemetry"
)

// AnalyzeBattery runs the viewer's debug dump over a raw session file
// and reduces the battery records it contains.
func (f *Facade) AnalyzeBattery(fileName string) ([]parse.BatteryPoint, telemetry.BatterySummary, string) {
	out, err := f.runner.RunViewer("-d", fileName)
	if err != nil {
		return nil, telemetry.SummarizeBattery(nil), err.Error()
	}

	points, perr := parse.ParseBattery(out)
	if perr != nil {
		return nil, telemetry.SummarizeBattery(nil), perr.Error()
	}

	return points, telemetry.SummarizeBattery(points), ""
}

// AnalyzeOrientation runs the viewer's orientation dump over a raw
// session file and summarizes the sample it reports.
func (f *Facade) AnalyzeOrientation(fileName string) (telemetry.OrientationSummary, string) {
	out, err := f.runner.RunViewer("-R", fileName)
	if err != nil {
		return telemetry.OrientationSummary{}, err.Error()
	}

	return telemetry.SummarizeOrientation(parse.LastOrientationLine(out)), ""
}
