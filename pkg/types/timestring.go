package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"

	// MinutesPerDay is the size of the wall clock used by PlusMinutes.
	MinutesPerDay = 24 * 60
)

// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" string
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a time-zone-naive wall-clock time in "HH:MM" format.
// The zero value is the empty string and means "not set".
type TimeString string

// NewTimeString builds a TimeString from the hour and minute of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" and normalizes it to "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(timeLayoutSeconds, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
// Values outside [0, 1440) wrap around the 24-hour clock.
func NewTimeStringFromMinutes(minutes int) TimeString {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the strict "HH:MM" format
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight, or -1 for an invalid value
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Hour returns the hour component (0 for an invalid value)
func (t TimeString) Hour() int {
	if m := t.Minutes(); m >= 0 {
		return m / 60
	}
	return 0
}

// Minute returns the minute component (0 for an invalid value)
func (t TimeString) Minute() int {
	if m := t.Minutes(); m >= 0 {
		return m % 60
	}
	return 0
}

// Compare orders two times by (hour, minute): negative if t < other,
// zero if equal, positive if t > other
func (t TimeString) Compare(other TimeString) int {
	return t.Minutes() - other.Minutes()
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Compare(other) < 0
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Compare(other) > 0
}

// Equal reports whether both values denote the same wall-clock minute
func (t TimeString) Equal(other TimeString) bool {
	return t.Compare(other) == 0
}

// PlusMinutes adds minutes and wraps within the 24-hour clock.
// There is no day rollover: "23:50" plus 20 is "00:10".
func (t TimeString) PlusMinutes(minutes int) TimeString {
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// MinusMinutes is PlusMinutes with the sign inverted
func (t TimeString) MinusMinutes(minutes int) TimeString {
	return t.PlusMinutes(-minutes)
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
