package config

import (
	"fmt"
	"regexp"
	"time"
)

// durationToken matches one count+unit pair, e.g. "30d" or "90m".
var durationToken = regexp.MustCompile(`^(\d+)(ms|s|m|h|d|w)`)

var durationUnits = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
	"w":  7 * 24 * time.Hour,
}

// ParseKeepSince parses a retention age. It accepts concatenated count+unit
// pairs with units ms, s, m, h, d (days) and w (weeks), such as "0s", "12h",
// "30d" or "1w2d". Days and weeks are fixed 24-hour multiples; calendar
// drift does not matter at retention granularity.
func ParseKeepSince(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var total time.Duration
	rest := s
	for rest != "" {
		m := durationToken.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		var count int64
		if _, err := fmt.Sscanf(m[1], "%d", &count); err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += time.Duration(count) * durationUnits[m[2]]
		rest = rest[len(m[0]):]
	}
	return total, nil
}
