package domain

import (
	"errors"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// ErrInvalidWindow is returned when a window is malformed or its end is not after its start
var ErrInvalidWindow = errors.New("domain: end time must be after start time")

// TimeWindow is a wall-clock interval [Start, End) within a single day
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeWindow parses both bounds and validates the window
func NewTimeWindow(start, end string) (TimeWindow, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return TimeWindow{}, err
	}
	w := TimeWindow{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

// Validate checks that both bounds are well-formed and End > Start
func (w TimeWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if w.End.Compare(w.Start) <= 0 {
		return ErrInvalidWindow
	}
	return nil
}

// Overlaps is the open-interval test start < other.End && end > other.Start.
// Touching windows do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.IsBefore(other.End) && w.End.IsAfter(other.Start)
}

// Widen extends both ends by minutes on the 24-hour clock (no day rollover)
func (w TimeWindow) Widen(minutes int) TimeWindow {
	return TimeWindow{
		Start: w.Start.MinusMinutes(minutes),
		End:   w.End.PlusMinutes(minutes),
	}
}

// DurationMinutes returns End - Start in minutes
func (w TimeWindow) DurationMinutes() int {
	return w.End.Minutes() - w.Start.Minutes()
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}
