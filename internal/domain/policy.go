package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

var (
	// ErrInvalidPolicy is returned for an inconsistent scheduling configuration
	ErrInvalidPolicy = errors.New("domain: invalid scheduling policy")

	// ErrInvalidDate is returned when a date is missing or unparseable
	ErrInvalidDate = errors.New("domain: invalid date")
)

// NotificationFailureMode decides what a failed notification does to the operation
type NotificationFailureMode string

const (
	// NotificationFailurePropagate returns the failure to the caller.
	// Already committed state changes stay committed.
	NotificationFailurePropagate NotificationFailureMode = "propagate"

	// NotificationFailureLog logs the failure and reports success
	NotificationFailureLog NotificationFailureMode = "log"
)

// ParseNotificationFailureMode validates a raw mode value
func ParseNotificationFailureMode(s string) (NotificationFailureMode, error) {
	switch mode := NotificationFailureMode(s); mode {
	case NotificationFailurePropagate, NotificationFailureLog:
		return mode, nil
	}
	return "", fmt.Errorf("%w: unknown notification failure mode %q", ErrInvalidPolicy, s)
}

// BusinessHours opening window applied to every open weekday
type BusinessHours struct {
	Open     types.TimeString
	Close    types.TimeString
	Weekdays []time.Weekday
}

// NewBusinessHours validates the window and weekday numbers (0 = Sunday ... 6 = Saturday)
func NewBusinessHours(open, closeTime types.TimeString, weekdays []int) (BusinessHours, error) {
	if (TimeWindow{Start: open, End: closeTime}).Validate() != nil {
		return BusinessHours{}, fmt.Errorf("%w: close time %q must be after open time %q", ErrInvalidPolicy, closeTime, open)
	}
	if len(weekdays) == 0 {
		return BusinessHours{}, fmt.Errorf("%w: at least one weekday is required", ErrInvalidPolicy)
	}

	days := make([]time.Weekday, 0, len(weekdays))
	for _, d := range weekdays {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return BusinessHours{}, fmt.Errorf("%w: weekday %d out of range 0..6", ErrInvalidPolicy, d)
		}
		days = append(days, time.Weekday(d))
	}

	return BusinessHours{Open: open, Close: closeTime, Weekdays: days}, nil
}

// IsOpenOn returns true if the clinic works on the weekday of date
func (h BusinessHours) IsOpenOn(date time.Time) bool {
	weekday := date.Weekday()
	for _, d := range h.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Contains reports whether window lies inside opening hours on date.
// Returns ErrInvalidDate for a zero date.
func (h BusinessHours) Contains(date time.Time, window TimeWindow) (bool, error) {
	if date.IsZero() {
		return false, ErrInvalidDate
	}
	if !h.IsOpenOn(date) {
		return false, nil
	}
	return window.Start.Compare(h.Open) >= 0 && window.End.Compare(h.Close) <= 0, nil
}

// Window returns the opening hours as a TimeWindow
func (h BusinessHours) Window() TimeWindow {
	return TimeWindow{Start: h.Open, End: h.Close}
}

// SchedulingPolicy explicit scheduling parameters passed into the lifecycle components
type SchedulingPolicy struct {
	Hours                  BusinessHours
	ConflictBufferMinutes  int
	SlotGranularityMinutes int
	NotificationFailure    NotificationFailureMode
}

// DefaultSchedulingPolicy 07:00-20:00 Mon-Fri, 15 minute buffer, 30 minute slots
func DefaultSchedulingPolicy() SchedulingPolicy {
	hours, _ := NewBusinessHours(DefaultOpenTime, DefaultCloseTime, DefaultWeekdays)
	return SchedulingPolicy{
		Hours:                  hours,
		ConflictBufferMinutes:  DefaultConflictBufferMinutes,
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
		NotificationFailure:    NotificationFailurePropagate,
	}
}

// Validate checks numeric bounds
func (p SchedulingPolicy) Validate() error {
	if p.ConflictBufferMinutes < 0 || p.ConflictBufferMinutes > MaxConflictBufferMinutes {
		return fmt.Errorf("%w: conflict buffer must be between 0 and %d minutes", ErrInvalidPolicy, MaxConflictBufferMinutes)
	}
	if p.SlotGranularityMinutes < MinSlotGranularityMinutes || p.SlotGranularityMinutes > MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slot granularity must be between %d and %d minutes",
			ErrInvalidPolicy, MinSlotGranularityMinutes, MaxSlotGranularityMinutes)
	}
	if _, err := ParseNotificationFailureMode(string(p.NotificationFailure)); err != nil {
		return err
	}
	return nil
}

// PropagatesNotificationFailures returns true in propagate mode
func (p SchedulingPolicy) PropagatesNotificationFailures() bool {
	return p.NotificationFailure == NotificationFailurePropagate
}
