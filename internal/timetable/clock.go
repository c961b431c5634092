package timetable

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedTime reports a meeting time that could not be parsed. Callers
// must treat it as fatal for the carrying record; defaulting to a bogus time
// could hide a real overlap.
var ErrMalformedTime = errors.New("timetable: malformed meeting time")

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(am|pm)$`)

// ClockMinutes converts a 12-hour clock reading to minutes from midnight.
// The meridiem is matched case-insensitively ("am", "Pm", ...). 12:00 AM maps
// to 0 and 12:00 PM to 720.
func ClockMinutes(hour, minute int, meridiem string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(meridiem))
	if normalized != "am" && normalized != "pm" {
		return 0, fmt.Errorf("%w: unknown meridiem %q", ErrMalformedTime, meridiem)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %d:%02d%s", ErrMalformedTime, hour, minute, normalized)
	}

	total := 60*hour + minute
	if normalized == "pm" {
		total += 12 * 60
	}
	if hour == 12 {
		total -= 12 * 60
	}
	return total, nil
}

// ParseClock parses a textual 12-hour clock reading such as "10:00am" into
// minutes from midnight.
func ParseClock(value string) (int, error) {
	matches := clockPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}
	hour, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}
	return ClockMinutes(hour, minute, matches[3])
}

// FormatMinutes renders minutes from midnight as H:MM, e.g. 660 -> "11:00".
func FormatMinutes(total int) string {
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
