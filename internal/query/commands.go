// internal/query/commands.go
package query

import (
	"fmt"
	"os"
	"strings"

	"github.com/tamzrod/diag-panel/internal/bitfield"
	"github.com/tamzrod/diag-panel/internal/parse"
)

// One logical HR mode is three bit operations in a fixed order.
// The tool offers no transaction and no rollback.
var hrModeCommands = map[bitfield.HRMode][][]string{
	bitfield.ModePolarStrap:   {{"-ds", "3"}, {"-dc", "28"}, {"-dc", "30"}},
	bitfield.ModeIntegratedHR: {{"-ds", "3"}, {"-ds", "28"}, {"-dc", "30"}},
	bitfield.ModeBluetoothHR:  {{"-ds", "3"}, {"-ds", "30"}, {"-dc", "28"}},
}

// Fixed -ssp argument vectors per radio class. Only tx/rx (positions
// 5 and 6) differ between the two known configurations.
var radioCommands = map[parse.RadioClass][]string{
	parse.RadioDefault:     {"-ssp", "5", "2", "36", "1", "9", "9", "0", "2", "3", "4161", "181", "0x1F1F1F1F"},
	parse.RadioAlternative: {"-ssp", "5", "1", "36", "1", "3", "3", "0", "2", "3", "4161", "181", "0x1F1F1F1F"},
}

// SetHRMode drives the ordered command sequence for one HR mode.
// Strict order; the sequence aborts on the first failed step and the
// returned error names it. Earlier steps are not rolled back.
func (f *Facade) SetHRMode(mode bitfield.HRMode) (string, error) {
	cmds, ok := hrModeCommands[mode]
	if !ok {
		return "", fmt.Errorf("query: invalid HR mode %q", mode)
	}

	log := []string{fmt.Sprintf("--- Setting HR Mode to: %s ---", mode)}

	for _, args := range cmds {
		out, err := f.runner.Run(args...)
		if err != nil {
			log = append(log, fmt.Sprintf("ERROR: %s\n%s", strings.Join(args, " "), err))
			return strings.Join(log, "\n"),
				fmt.Errorf("query: set HR mode aborted at %q: %w", strings.Join(args, " "), err)
		}
		log = append(log, fmt.Sprintf("SUCCESS: %s\n%s", strings.Join(args, " "), out))
	}

	log = append(log, "--- HR Mode setting complete. ---")
	return strings.Join(log, "\n"), nil
}

// SetRadioConfig writes one of the two known radio configurations.
func (f *Facade) SetRadioConfig(class parse.RadioClass) (string, error) {
	args, ok := radioCommands[class]
	if !ok {
		return "", fmt.Errorf("query: invalid radio configuration %q", class)
	}

	log := []string{fmt.Sprintf("--- Setting 6.5 GHz Config to: %s ---", class)}

	out, err := f.runner.Run(args...)
	if err != nil {
		log = append(log, fmt.Sprintf("ERROR: %s\n%s", strings.Join(args, " "), err))
		return strings.Join(log, "\n"),
			fmt.Errorf("query: set radio config failed: %w", err)
	}
	log = append(log, fmt.Sprintf("SUCCESS: %s\n%s", strings.Join(args, " "), out))

	log = append(log, "--- 6.5 GHz Config setting complete. ---")
	return strings.Join(log, "\n"), nil
}

// DownloadSessions pulls the named sessions for one device into dir.
// The tool writes into its working directory, so each command runs
// from dir. Downloads are independent of each other: a failed one is
// logged and the rest are still attempted.
func (f *Facade) DownloadSessions(deviceID string, sessions []int, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("query: create download dir: %w", err)
	}

	var log []string

	for _, num := range sessions {
		args := []string{"-id", deviceID, "-sd", fmt.Sprintf("%d", num)}
		log = append(log, fmt.Sprintf("--- Downloading Session %d for Device %s to %s ---", num, deviceID, dir))

		out, err := f.runner.RunInDir(dir, args...)
		if err != nil {
			log = append(log, fmt.Sprintf("ERROR: %s", err))
			continue
		}
		log = append(log, fmt.Sprintf("SUCCESS: %s", out))
	}

	log = append(log, "--- Download complete. ---")
	return strings.Join(log, "\n"), nil
}
