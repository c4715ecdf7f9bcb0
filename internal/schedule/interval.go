// Package schedule validates a flight's proposed departure/arrival interval.
package schedule

import "time"

// Result reports whether a departure/arrival pair forms a valid interval and,
// if so, its duration decomposed for display.
type Result struct {
	Valid        bool
	TotalMinutes int
	Hours        int
	Minutes      int
}

// Field inputs arrive as raw datetime-local strings; RFC 3339 is accepted for
// values hydrated from a loaded flight.
var layouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Parse converts a raw schedule field value. The second return is false for
// empty or unparseable input.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate checks a proposed interval. Absent or unparseable inputs and an
// arrival at or before the departure both yield an invalid result with no
// duration; this is editor state, not an error.
func Validate(departure, arrival string) Result {
	dep, ok := Parse(departure)
	if !ok {
		return Result{}
	}
	arr, ok := Parse(arrival)
	if !ok {
		return Result{}
	}
	if !arr.After(dep) {
		return Result{}
	}
	total := int(arr.Sub(dep) / time.Minute)
	return Result{
		Valid:        true,
		TotalMinutes: total,
		Hours:        total / 60,
		Minutes:      total % 60,
	}
}
