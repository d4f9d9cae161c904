package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// ErrInvalidStatus is returned for an unknown reservation status value
var ErrInvalidStatus = errors.New("domain: invalid reservation status")

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending     ReservationStatus = "pending"
	StatusConfirmed   ReservationStatus = "confirmed"
	StatusRescheduled ReservationStatus = "rescheduled"
	StatusCancelled   ReservationStatus = "cancelled"
	StatusCompleted   ReservationStatus = "completed"
)

// ActiveStatuses statuses counted when checking employee conflicts and free slots
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPending,
	StatusRescheduled,
}

// transitions lists the moves performed by the confirmation flows.
// Confirmed and completed have no outgoing transitions here; the generic
// status update may still overwrite them.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:     {StatusConfirmed, StatusRescheduled, StatusCancelled},
	StatusRescheduled: {StatusConfirmed, StatusCancelled},
}

// ParseReservationStatus validates a raw status value
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// IsValid returns true for one of the five known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive returns true if reservations in this status occupy the employee
func (s ReservationStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is a modeled transition from s
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a single-day appointment for an animal.
// Start and End are derived from Date, TimeStart and TimeEnd by Normalize
// and are never set independently.
type Reservation struct {
	ID         string
	AnimalID   string
	ClientID   string
	EmployeeID *string

	Date      time.Time
	TimeStart types.TimeString
	TimeEnd   types.TimeString
	Start     time.Time
	End       time.Time

	Reason         *string
	Status         ReservationStatus
	RescheduleNote *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize truncates Date to midnight and recomputes Start and End.
// Must be called before every write.
func (r *Reservation) Normalize() {
	r.Date = NormalizeDate(r.Date)
	r.Start = CombineDateAndTime(r.Date, r.TimeStart)
	r.End = CombineDateAndTime(r.Date, r.TimeEnd)
}

// Window returns the wall-clock interval of the reservation
func (r *Reservation) Window() TimeWindow {
	return TimeWindow{Start: r.TimeStart, End: r.TimeEnd}
}

// IsActive returns true if the reservation occupies its employee
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// HasEmployee returns true if an employee is assigned
func (r *Reservation) HasEmployee() bool {
	return r.EmployeeID != nil && *r.EmployeeID != ""
}

// Reschedule moves the reservation to a new date and window and re-derives Start/End
func (r *Reservation) Reschedule(date time.Time, window TimeWindow) {
	r.Date = date
	r.TimeStart = window.Start
	r.TimeEnd = window.End
	r.Normalize()
}
