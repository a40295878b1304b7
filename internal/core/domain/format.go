package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sosodev/duration"
)

// FormatMode selects how durations and counts are rendered on a VideoSummary.
type FormatMode int

const (
	// FormatRaw keeps the upstream ISO-8601 duration and decimal counts.
	FormatRaw FormatMode = iota
	// FormatDisplay renders "H:MM:SS" durations and "1.5K" style counts.
	FormatDisplay
)

func (m FormatMode) String() string {
	switch m {
	case FormatRaw:
		return "raw"
	case FormatDisplay:
		return "display"
	default:
		return fmt.Sprintf("FormatMode(%d)", int(m))
	}
}

// FormatDuration turns an ISO-8601 duration into "H:MM:SS" or "M:SS".
// Empty or malformed input yields "0:00".
func FormatDuration(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return "0:00"
	}

	parsed, err := duration.Parse(iso)
	if err != nil {
		return "0:00"
	}

	total := int64(parsed.ToTimeDuration().Seconds())
	if total < 0 {
		return "0:00"
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatCount abbreviates a count: 999 -> "999", 1500 -> "1.5K", 2300000 -> "2.3M".
func FormatCount(count int64) string {
	switch {
	case count >= 1_000_000:
		return strconv.FormatFloat(float64(count)/1_000_000, 'f', 1, 64) + "M"
	case count >= 1_000:
		return strconv.FormatFloat(float64(count)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(count, 10)
	}
}

// FormatCountString parses a raw decimal count and abbreviates it.
// Anything unparseable counts as zero.
func FormatCountString(raw string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "0"
	}
	return FormatCount(n)
}
