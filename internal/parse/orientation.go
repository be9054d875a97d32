// internal/parse/orientation.go
package parse

import "strings"

// LastOrientationLine returns the last non-empty line composed solely
// of orientation codes ('+', 'r', 'u', '.').
//
// Last wins on purpose: diagnostic preambles can coincidentally match
// earlier in the log, and the authoritative sample is the most recent
// line. If the tool ever emits more than one genuine sample per run,
// earlier ones are discarded without warning.
func LastOrientationLine(text string) string {
	lines := strings.Split(text, "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if orientationPattern.MatchString(line) {
			return line
		}
	}

	return ""
}
