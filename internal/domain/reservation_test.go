package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
)

func TestReservation_Normalize(t *testing.T) {
	r := &Reservation{
		Date:      time.Date(2024, 6, 3, 13, 14, 15, 0, time.UTC),
		TimeStart: "10:00",
		TimeEnd:   "10:30",
	}

	r.Normalize()

	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, CombineDateAndTime(r.Date, "10:00"), r.Start)
	assert.Equal(t, time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC), r.End)
}

func TestReservation_Reschedule(t *testing.T) {
	r := &Reservation{Date: monday, TimeStart: "10:00", TimeEnd: "10:30"}
	r.Normalize()

	r.Reschedule(monday.AddDate(0, 0, 1), TimeWindow{Start: "11:00", End: "12:00"})

	assert.Equal(t, time.Date(2024, 6, 4, 11, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 6, 4, 12, 0, 0, 0, time.UTC), r.End)
}

func TestReservationStatus(t *testing.T) {
	for _, s := range []ReservationStatus{StatusPending, StatusConfirmed, StatusRescheduled} {
		assert.True(t, s.IsActive(), s)
	}
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())

	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusRescheduled.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusRescheduled.CanTransitionTo(StatusPending))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))

	_, err := ParseReservationStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, err := ParseReservationStatus("rescheduled")
	require.NoError(t, err)
	assert.Equal(t, StatusRescheduled, got)
}

func TestReservation_HasEmployee(t *testing.T) {
	assert.False(t, (&Reservation{}).HasEmployee())
	assert.False(t, (&Reservation{EmployeeID: ptr.Ptr("")}).HasEmployee())
	assert.True(t, (&Reservation{EmployeeID: ptr.Ptr("e1")}).HasEmployee())
}
