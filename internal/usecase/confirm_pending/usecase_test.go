package confirm_pending

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
	"github.com/m04kA/SMC-ClinicReservationService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
)

type fixture struct {
	uc       *UseCase
	repo     *usecasetest.Reservations
	notifier *usecasetest.Notifier
}

func newFixture(existing ...*domain.Reservation) *fixture {
	f := &fixture{
		repo:     usecasetest.NewReservations(existing...),
		notifier: &usecasetest.Notifier{},
	}
	log := usecasetest.NopLogger{}
	checker := scheduling.NewChecker(f.repo, &usecasetest.BlockedTimes{}, domain.DefaultSchedulingPolicy(), log)
	resolver := scheduling.NewResolver(usecasetest.DefaultIdentity(), usecasetest.DefaultAnimals(), log)
	f.uc = NewUseCase(f.repo, checker, resolver, f.notifier, &usecasetest.TxManager{}, &usecasetest.Recorder{}, log)
	return f
}

func pendingWithoutEmployee() *domain.Reservation {
	return usecasetest.NewReservation("res-1", "client-1", nil, "10:00", "10:30", domain.StatusPending)
}

func TestExecute_Confirms(t *testing.T) {
	f := newFixture(pendingWithoutEmployee())

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID:    "res-1",
		Status:           "confirmed",
		EmployeeID:       "staff-1",
		ConfirmationNote: ptr.Ptr("bring the vaccination card"),
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, ptr.Ptr("staff-1"), resp.EmployeeID)
	assert.Equal(t, ptr.Ptr("bring the vaccination card"), resp.RescheduleNote)

	require.Equal(t, []domain.NotificationEvent{domain.EventConfirmed}, f.notifier.Kinds())
	assert.Equal(t, ptr.Ptr("bring the vaccination card"), f.notifier.Events[0].Note)
}

func TestExecute_AdminCanBeAssigned(t *testing.T) {
	f := newFixture(pendingWithoutEmployee())

	resp, err := f.uc.Execute(context.Background(), &Request{ReservationID: "res-1", Status: "confirmed", EmployeeID: "admin-1"})
	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr("admin-1"), resp.EmployeeID)
}

func TestExecute_NotIdempotent(t *testing.T) {
	f := newFixture(pendingWithoutEmployee())
	req := &Request{ReservationID: "res-1", Status: "confirmed", EmployeeID: "staff-1"}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Len(t, f.notifier.Events, 1)
}

func TestExecute_Rejections(t *testing.T) {
	busy := usecasetest.NewReservation("res-2", "client-2", ptr.Ptr("staff-1"), "10:30", "11:00", domain.StatusConfirmed)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "wrong status", req: Request{ReservationID: "res-1", Status: "cancelled", EmployeeID: "staff-1"}, wantErr: ErrInvalidStatus},
		{name: "unknown status", req: Request{ReservationID: "res-1", Status: "yes", EmployeeID: "staff-1"}, wantErr: ErrInvalidStatus},
		{name: "missing employee", req: Request{ReservationID: "res-1", Status: "confirmed"}, wantErr: ErrEmployeeRequired},
		{name: "client as employee", req: Request{ReservationID: "res-1", Status: "confirmed", EmployeeID: "client-2"}, wantErr: scheduling.ErrInvalidEmployee},
		{name: "unknown employee", req: Request{ReservationID: "res-1", Status: "confirmed", EmployeeID: "ghost"}, wantErr: scheduling.ErrEmployeeNotFound},
		{name: "unknown reservation", req: Request{ReservationID: "nope", Status: "confirmed", EmployeeID: "staff-1"}, wantErr: ErrReservationNotFound},
		{name: "employee busy", req: Request{ReservationID: "res-1", Status: "confirmed", EmployeeID: "staff-1"}, wantErr: scheduling.ErrEmployeeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(pendingWithoutEmployee(), busy)

			_, err := f.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.repo.Updates)
			assert.Empty(t, f.notifier.Events)
		})
	}
}
