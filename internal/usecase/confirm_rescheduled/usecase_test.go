package confirm_rescheduled

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
	"github.com/m04kA/SMC-ClinicReservationService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
)

type fixture struct {
	uc       *UseCase
	repo     *usecasetest.Reservations
	notifier *usecasetest.Notifier
	tx       *usecasetest.TxManager
}

func newFixture(existing ...*domain.Reservation) *fixture {
	f := &fixture{
		repo:     usecasetest.NewReservations(existing...),
		notifier: &usecasetest.Notifier{},
		tx:       &usecasetest.TxManager{},
	}
	log := usecasetest.NopLogger{}
	checker := scheduling.NewChecker(f.repo, &usecasetest.BlockedTimes{}, domain.DefaultSchedulingPolicy(), log)
	f.uc = NewUseCase(f.repo, checker, f.notifier, f.tx, &usecasetest.Recorder{}, log)
	return f
}

func rescheduled(employeeID *string) *domain.Reservation {
	return usecasetest.NewReservation("res-1", "client-1", employeeID, "14:00", "14:30", domain.StatusRescheduled)
}

func TestExecute_Confirm(t *testing.T) {
	f := newFixture(rescheduled(ptr.Ptr("staff-1")))

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID:    "res-1",
		Status:           "confirmed",
		ConfirmationNote: ptr.Ptr("ok"),
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, ptr.Ptr("ok"), resp.RescheduleNote)
	assert.Equal(t, []domain.NotificationEvent{domain.EventConfirmed}, f.notifier.Kinds())
}

func TestExecute_CancelSkipsConflictCheck(t *testing.T) {
	clash := usecasetest.NewReservation("res-2", "client-2", ptr.Ptr("staff-1"), "14:00", "14:30", domain.StatusConfirmed)
	f := newFixture(rescheduled(ptr.Ptr("staff-1")), clash)

	resp, err := f.uc.Execute(context.Background(), &Request{ReservationID: "res-1", Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Nil(t, resp.RescheduleNote)
	assert.Equal(t, []domain.NotificationEvent{domain.EventCancelled}, f.notifier.Kinds())
	assert.Empty(t, f.repo.Locks)
}

func TestExecute_NotificationFailureAbortsConfirm(t *testing.T) {
	f := newFixture(rescheduled(ptr.Ptr("staff-1")))
	f.notifier.Err = notifications.ErrNotificationFailed

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: "res-1", Status: "confirmed"})
	assert.ErrorIs(t, err, notifications.ErrNotificationFailed)
	assert.ErrorIs(t, err, ErrConfirmationNotSent)
	assert.Zero(t, f.repo.Updates)

	stored, err := f.repo.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRescheduled, stored.Status)
}

func TestExecute_RecipientResolvedBeforeTransaction(t *testing.T) {
	f := newFixture(rescheduled(ptr.Ptr("staff-1")))
	f.notifier.PrepareErr = notifications.ErrNotificationFailed

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: "res-1", Status: "confirmed"})
	assert.ErrorIs(t, err, ErrConfirmationNotSent)
	assert.Zero(t, f.tx.Calls)
	assert.Zero(t, f.repo.Updates)
	assert.Empty(t, f.notifier.Events)
}

func TestExecute_Rejections(t *testing.T) {
	clash := usecasetest.NewReservation("res-2", "client-2", ptr.Ptr("staff-1"), "13:30", "13:50", domain.StatusPending)

	tests := []struct {
		name     string
		existing []*domain.Reservation
		req      Request
		wantErr  error
	}{
		{
			name:     "pending is not rescheduled",
			existing: []*domain.Reservation{usecasetest.NewReservation("res-1", "client-1", ptr.Ptr("staff-1"), "14:00", "14:30", domain.StatusPending)},
			req:      Request{ReservationID: "res-1", Status: "confirmed"},
			wantErr:  ErrNotRescheduled,
		},
		{
			name:     "status outside allowed set",
			existing: []*domain.Reservation{rescheduled(ptr.Ptr("staff-1"))},
			req:      Request{ReservationID: "res-1", Status: "pending"},
			wantErr:  ErrInvalidStatus,
		},
		{
			name:     "no employee",
			existing: []*domain.Reservation{rescheduled(nil)},
			req:      Request{ReservationID: "res-1", Status: "confirmed"},
			wantErr:  ErrEmployeeRequired,
		},
		{
			name:     "conflict within buffer",
			existing: []*domain.Reservation{rescheduled(ptr.Ptr("staff-1")), clash},
			req:      Request{ReservationID: "res-1", Status: "confirmed"},
			wantErr:  scheduling.ErrEmployeeConflict,
		},
		{
			name:    "unknown reservation",
			req:     Request{ReservationID: "nope", Status: "confirmed"},
			wantErr: ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.existing...)

			_, err := f.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.repo.Updates)
			assert.Empty(t, f.notifier.Events)
		})
	}
}
