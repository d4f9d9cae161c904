package domain

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// ParseDate parses a calendar day. Accepts "YYYY-MM-DD" and RFC 3339
// timestamps, of which only the date part is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NormalizeDate(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// NormalizeDate returns midnight UTC of the calendar day of t
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a calendar day as "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// CombineDateAndTime returns the instant with the year, month and day of
// date and the hour and minute of ts; seconds are zeroed.
func CombineDateAndTime(date time.Time, ts types.TimeString) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, ts.Hour(), ts.Minute(), 0, 0, time.UTC)
}

// GenerateTimeSlots yields "HH:MM" values from start inclusive, stepping by
// stepMinutes, stopping strictly before end. The sequence can be ranged over
// more than once.
func GenerateTimeSlots(start, end types.TimeString, stepMinutes int) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		if stepMinutes <= 0 {
			return
		}
		from, to := start.Minutes(), end.Minutes()
		if from < 0 || to < 0 {
			return
		}
		for m := from; m < to; m += stepMinutes {
			if !yield(types.NewTimeStringFromMinutes(m)) {
				return
			}
		}
	}
}
