// internal/query/facade.go
package query

import (
	"fmt"
	"strings"

	"github.com/tamzrod/diag-panel/internal/parse"
	"github.com/tamzrod/diag-panel/internal/proc"
)

// Facade turns raw tool output into typed dashboard data.
//
// One method per data category. Each returns its records plus an
// error log; the two are independent, and both can be non-empty at
// once. Empty records with an empty log means the tool ran fine and
// found nothing.
type Facade struct {
	runner proc.Runner
}

func New(runner proc.Runner) *Facade {
	return &Facade{runner: runner}
}

// Devices runs the no-argument scan and decodes every summary line.
// A line carrying the device marker that fails the summary shape is
// logged, not dropped. A device whose flags fail to decode is kept
// with the error HR mode so the fault stays visible.
func (f *Facade) Devices() ([]parse.Device, string) {
	out, err := f.runner.Run()
	if err != nil {
		return nil, err.Error()
	}

	var devices []parse.Device
	var failures []string

	for _, line := range strings.Split(out, "\n") {
		dev, matched, perr := parse.ParseDeviceLine(line)
		switch {
		case matched && perr == nil:
			devices = append(devices, dev)
		case matched:
			devices = append(devices, dev)
			failures = append(failures, perr.Error())
		case parse.HasDeviceMarker(line):
			failures = append(failures, fmt.Sprintf("failed to parse line: %s", strings.TrimSpace(line)))
		}
	}

	if len(devices) == 0 && len(failures) == 0 {
		return nil, "No devices found. Check connection."
	}

	return devices, strings.Join(failures, "\n")
}

// RadioConfigs reads every device's 6.5 GHz configuration.
func (f *Facade) RadioConfigs() ([]parse.RadioConfig, string) {
	out, err := f.runner.Run("-gsp")
	if err != nil {
		return nil, err.Error()
	}

	var configs []parse.RadioConfig
	var failures []string

	for _, line := range strings.Split(out, "\n") {
		rc, matched, perr := parse.ParseRadioLine(line)
		if !matched {
			continue
		}
		if perr != nil {
			failures = append(failures, perr.Error())
			continue
		}
		configs = append(configs, rc)
	}

	return configs, strings.Join(failures, "\n")
}

// PublicKeys reads every device's public key hash.
func (f *Facade) PublicKeys() ([]parse.KeyRecord, string) {
	out, err := f.runner.Run("-gpk")
	if err != nil {
		return nil, err.Error()
	}

	var keys []parse.KeyRecord
	for _, line := range strings.Split(out, "\n") {
		if rec, matched := parse.ParseKeyLine(line); matched {
			keys = append(keys, rec)
		}
	}

	return keys, ""
}

// Sessions lists recorded sessions grouped per device.
func (f *Facade) Sessions() ([]parse.SessionGroup, string) {
	out, err := f.runner.Run("-si")
	if err != nil {
		return nil, err.Error()
	}

	return parse.AssembleSessions(out)
}
