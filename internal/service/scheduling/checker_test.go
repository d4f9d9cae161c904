package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

func newTestChecker(reservations *fakeReservations, blocked *fakeBlocked) *Checker {
	return NewChecker(reservations, blocked, domain.DefaultSchedulingPolicy(), nopLogger{})
}

func TestChecker_ValidateWindow(t *testing.T) {
	c := newTestChecker(&fakeReservations{}, &fakeBlocked{})
	saturday := monday.AddDate(0, 0, 5)

	tests := []struct {
		name    string
		date    time.Time
		window  domain.TimeWindow
		wantErr error
	}{
		{name: "inside hours", date: monday, window: domain.TimeWindow{Start: "07:00", End: "20:00"}},
		{name: "end before start", date: monday, window: domain.TimeWindow{Start: "11:00", End: "10:00"}, wantErr: ErrInvalidWindow},
		{name: "equal bounds", date: monday, window: domain.TimeWindow{Start: "10:00", End: "10:00"}, wantErr: ErrInvalidWindow},
		{name: "malformed time", date: monday, window: domain.TimeWindow{Start: "ten", End: "11:00"}, wantErr: ErrInvalidTime},
		{name: "before opening", date: monday, window: domain.TimeWindow{Start: "06:30", End: "07:30"}, wantErr: ErrOutsideBusinessHours},
		{name: "after closing", date: monday, window: domain.TimeWindow{Start: "19:30", End: "20:30"}, wantErr: ErrOutsideBusinessHours},
		{name: "weekend", date: saturday, window: domain.TimeWindow{Start: "10:00", End: "11:00"}, wantErr: ErrOutsideBusinessHours},
		{name: "zero date", window: domain.TimeWindow{Start: "10:00", End: "11:00"}, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateWindow(tt.date, tt.window)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChecker_IsTimeBlocked_Containment(t *testing.T) {
	blocked := &domain.BlockedTime{ID: "b1", Date: monday, TimeStart: "12:00", TimeEnd: "13:00"}
	blocked.Normalize()
	c := newTestChecker(&fakeReservations{}, &fakeBlocked{items: []*domain.BlockedTime{blocked}})
	ctx := context.Background()

	tests := []struct {
		name   string
		window domain.TimeWindow
		want   bool
	}{
		{name: "request contains block", window: mustWindow("11:00", "14:00"), want: true},
		{name: "same start, longer request", window: mustWindow("12:00", "13:30"), want: true},
		{name: "exact same window", window: mustWindow("12:00", "13:00"), want: false},
		{name: "request inside block", window: mustWindow("12:15", "12:45"), want: false},
		{name: "partial overlap at start", window: mustWindow("11:30", "12:30"), want: false},
		{name: "disjoint", window: mustWindow("14:00", "15:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.IsTimeBlocked(ctx, monday, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := c.IsTimeBlocked(ctx, monday.AddDate(0, 0, 1), mustWindow("11:00", "14:00"))
	require.NoError(t, err)
	assert.False(t, got, "blocks apply only to their own date")
}

func TestChecker_IsEmployeeReserved_Buffer(t *testing.T) {
	repo := &fakeReservations{items: []*domain.Reservation{
		reservationAt("r1", "emp-1", "10:00", "10:30", domain.StatusConfirmed),
	}}
	c := newTestChecker(repo, &fakeBlocked{})
	ctx := context.Background()

	tests := []struct {
		name   string
		window domain.TimeWindow
		want   bool
	}{
		{name: "starts one minute after", window: mustWindow("10:31", "11:00"), want: true},
		{name: "starts at buffer edge", window: mustWindow("10:45", "11:15"), want: false},
		{name: "starts after buffer", window: mustWindow("10:46", "11:15"), want: false},
		{name: "ends inside leading buffer", window: mustWindow("09:00", "09:50"), want: true},
		{name: "ends at leading buffer edge", window: mustWindow("09:00", "09:45"), want: false},
		{name: "same window", window: mustWindow("10:00", "10:30"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.IsEmployeeReserved(ctx, "emp-1", monday, tt.window, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_IsEmployeeReserved_Filters(t *testing.T) {
	repo := &fakeReservations{items: []*domain.Reservation{
		reservationAt("r1", "emp-1", "10:00", "10:30", domain.StatusCancelled),
		reservationAt("r2", "emp-1", "12:00", "12:30", domain.StatusPending),
		reservationAt("r3", "emp-2", "14:00", "14:30", domain.StatusConfirmed),
	}}
	c := newTestChecker(repo, &fakeBlocked{})
	ctx := context.Background()

	got, err := c.IsEmployeeReserved(ctx, "emp-1", monday, mustWindow("10:00", "10:30"), nil)
	require.NoError(t, err)
	assert.False(t, got, "cancelled reservations are ignored")

	got, err = c.IsEmployeeReserved(ctx, "emp-1", monday, mustWindow("12:00", "12:30"), nil)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = c.IsEmployeeReserved(ctx, "emp-1", monday, mustWindow("12:00", "12:30"), ptr.Ptr("r2"))
	require.NoError(t, err)
	assert.False(t, got, "excluded reservation is ignored")

	got, err = c.IsEmployeeReserved(ctx, "emp-1", monday, mustWindow("14:00", "14:30"), nil)
	require.NoError(t, err)
	assert.False(t, got, "other employees are ignored")
}

func TestChecker_IsEmployeeReserved_RepositoryError(t *testing.T) {
	c := newTestChecker(&fakeReservations{listErr: errors.New("db down")}, &fakeBlocked{})

	_, err := c.IsEmployeeReserved(context.Background(), "emp-1", monday, mustWindow("10:00", "10:30"), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestChecker_CheckFeasibility(t *testing.T) {
	blocked := &domain.BlockedTime{ID: "b1", Date: monday, TimeStart: "12:00", TimeEnd: "12:30"}
	blocked.Normalize()
	c := newTestChecker(&fakeReservations{}, &fakeBlocked{items: []*domain.BlockedTime{blocked}})
	ctx := context.Background()

	assert.NoError(t, c.CheckFeasibility(ctx, monday, mustWindow("09:00", "10:00")))
	assert.ErrorIs(t, c.CheckFeasibility(ctx, monday, mustWindow("11:00", "13:00")), ErrTimeBlocked)
	assert.ErrorIs(t, c.CheckFeasibility(ctx, monday, mustWindow("19:00", "21:00")), ErrOutsideBusinessHours)
}

func TestChecker_EnsureEmployeeFree(t *testing.T) {
	repo := &fakeReservations{items: []*domain.Reservation{
		reservationAt("r1", "emp-1", "10:00", "10:30", domain.StatusConfirmed),
	}}
	c := newTestChecker(repo, &fakeBlocked{})
	ctx := context.Background()

	err := c.EnsureEmployeeFree(ctx, "emp-1", monday, mustWindow("10:31", "11:00"), nil)
	assert.ErrorIs(t, err, ErrEmployeeConflict)

	err = c.EnsureEmployeeFree(ctx, "emp-1", monday, mustWindow("10:46", "11:15"), nil)
	assert.NoError(t, err)

	assert.Equal(t, []string{"emp-1@2024-06-03", "emp-1@2024-06-03"}, repo.locks)
}

func TestChecker_CustomPolicy(t *testing.T) {
	policy := domain.DefaultSchedulingPolicy()
	policy.ConflictBufferMinutes = 0
	hours, err := domain.NewBusinessHours(types.TimeString("09:00"), types.TimeString("17:00"), []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	policy.Hours = hours

	repo := &fakeReservations{items: []*domain.Reservation{
		reservationAt("r1", "emp-1", "10:00", "10:30", domain.StatusConfirmed),
	}}
	c := NewChecker(repo, &fakeBlocked{}, policy, nopLogger{})

	reserved, err := c.IsEmployeeReserved(context.Background(), "emp-1", monday, mustWindow("10:30", "11:00"), nil)
	require.NoError(t, err)
	assert.False(t, reserved, "back-to-back is allowed without buffer")

	assert.ErrorIs(t, c.ValidateWindow(monday, mustWindow("08:00", "09:00")), ErrOutsideBusinessHours)
	assert.NoError(t, c.ValidateWindow(monday.AddDate(0, 0, 5), mustWindow("09:00", "10:00")))
}
