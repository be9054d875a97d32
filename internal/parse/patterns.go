// internal/parse/patterns.go
package parse

import "regexp"

// The line grammar below is owned by the native tools and is not
// versioned. Each pattern documents the shape it matches; upstream
// drift surfaces as parse failures, never as wrong records.

var (
	// ID:<digits>,Family=<type>/...,...,Ver <version>,...,Flags=0x<hex>
	summaryPattern = regexp.MustCompile(
		`(?i)ID:(?P<id>\d+),Family=(?P<family>.*?)/.*?,.*?Ver (?P<firmware>[\w.+]+),.*?Flags=(?P<flags>0x[a-fA-F0-9]+)`)

	// ID:<digits>,...,txCode=<digits>,rxCode=<digits>
	radioPattern = regexp.MustCompile(
		`(?i)ID:(?P<id>\d+),.*?txCode=(?P<tx>\d+),rxCode=(?P<rx>\d+)`)

	// ID:<digits>, Public Key Hash=<hex>
	keyPattern = regexp.MustCompile(
		`(?i)ID:(?P<id>\d+), Public Key Hash=(?P<hash>[a-fA-F0-9]+)`)

	// Id:<digits> Total Sessions:<digits>
	sessionHeaderPattern = regexp.MustCompile(
		`(?i)Id:(?P<id>\d+) Total Sessions:(?P<total>\d+)`)

	// Session <n>: length=<l>,Duration=<d> secs,createTime <text> UTC
	sessionPattern = regexp.MustCompile(
		`(?i)Session (?P<num>\d+): length=(?P<length>\d+),Duration=(?P<duration>\d+) secs,createTime (?P<time>.*?) UTC`)

	// A full line over the orientation alphabet.
	// Case-sensitive: the reading codes are lowercase by contract.
	orientationPattern = regexp.MustCompile(`^[+ru.]+$`)

	// <hexaddr> <time_s> DATA: Battery=<voltage>V, <percent>%
	// Matched over the whole blob: records interleave with diagnostic
	// lines and irregular whitespace.
	batteryPattern = regexp.MustCompile(
		`(?im)^\s*[a-fA-F0-9]+\s+(?P<time>[\d.]+)\s+DATA:\s+Battery=(?P<voltage>[\d.]+)V,\s+(?P<percent>\d+)%`)
)

// group extracts one named capture from a FindStringSubmatch result.
func group(re *regexp.Regexp, m []string, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i]
}
