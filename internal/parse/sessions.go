// internal/parse/sessions.go
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// SessionRecord is one recorded session. Selected belongs to the
// presentation layer; the parsers never set it.
type SessionRecord struct {
	Number       int    `json:"number"`
	Length       int    `json:"length"`
	DurationSecs int    `json:"duration_secs"`
	CreateTime   string `json:"create_time"`
	Selected     bool   `json:"selected"`
}

// SessionGroup is the ordered run of sessions under one device header.
type SessionGroup struct {
	DeviceID string          `json:"device_id"`
	Total    int             `json:"total"`
	Sessions []SessionRecord `json:"sessions"`
}

// AssembleSessions scans the session listing and groups session lines
// under the device header that precedes them.
//
// Scan state is the current device id, initially none. A session line
// before any header has no device to attach to and is dropped.
// Repeat headers for the same id accumulate into the same group;
// group order is header insertion order.
//
// The header's session count is informational only and is not trusted
// for grouping. Numeric conversion failures are collected into the
// returned failure log.
func AssembleSessions(text string) ([]SessionGroup, string) {
	var groups []SessionGroup
	index := make(map[string]int)
	current := -1

	var failures []string

	for _, line := range strings.Split(text, "\n") {
		if m := sessionHeaderPattern.FindStringSubmatch(line); m != nil {
			id := CanonicalID(group(sessionHeaderPattern, m, "id"))

			gi, seen := index[id]
			if !seen {
				total, err := strconv.Atoi(group(sessionHeaderPattern, m, "total"))
				if err != nil {
					failures = append(failures, fmt.Sprintf("bad session count in line: %s", line))
					total = 0
				}
				groups = append(groups, SessionGroup{DeviceID: id, Total: total})
				gi = len(groups) - 1
				index[id] = gi
			}
			current = gi
			continue
		}

		m := sessionPattern.FindStringSubmatch(line)
		if m == nil || current < 0 {
			continue
		}

		rec, err := sessionFromMatch(m)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%v (line: %s)", err, strings.TrimSpace(line)))
			continue
		}
		groups[current].Sessions = append(groups[current].Sessions, rec)
	}

	return groups, strings.Join(failures, "\n")
}

func sessionFromMatch(m []string) (SessionRecord, error) {
	num, err := strconv.Atoi(group(sessionPattern, m, "num"))
	if err != nil {
		return SessionRecord{}, fmt.Errorf("parse: bad session number: %w", err)
	}
	length, err := strconv.Atoi(group(sessionPattern, m, "length"))
	if err != nil {
		return SessionRecord{}, fmt.Errorf("parse: bad session length: %w", err)
	}
	dur, err := strconv.Atoi(group(sessionPattern, m, "duration"))
	if err != nil {
		return SessionRecord{}, fmt.Errorf("parse: bad session duration: %w", err)
	}

	return SessionRecord{
		Number:       num,
		Length:       length,
		DurationSecs: dur,
		CreateTime:   group(sessionPattern, m, "time"),
	}, nil
}
