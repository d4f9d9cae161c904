package blockedtimes

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/blockedtime"
	"github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes/models"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeIdentity map[string]*domain.User

func (f fakeIdentity) GetUser(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, identity.ErrUserNotFound
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })
	require.NoError(t, schema.Apply(context.Background(), raw))

	repo := blockedRepo.NewRepository(dbmetrics.Wrap(raw, nil), psqlbuilder.SQLite)
	users := fakeIdentity{
		"admin-1": {ID: "admin-1", Role: domain.RoleAdmin},
		"staff-1": {ID: "staff-1", Role: domain.RoleStaff},
	}
	return NewService(repo, users, nopLogger{})
}

func TestService_Create_Normalizes(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Create(context.Background(), &models.CreateBlockedTimeRequest{
		RequesterID: "admin-1",
		Date:        "2024-06-03T15:04:05Z",
		TimeStart:   "12:00:00",
		TimeEnd:     "13:00",
		Reason:      ptr.Ptr("staff meeting"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "2024-06-03", got.Date)
	assert.Equal(t, "12:00", got.TimeStart)
	assert.Equal(t, "13:00", got.TimeEnd)
	assert.Equal(t, 12, got.Start.Hour())
	assert.Equal(t, ptr.Ptr("staff meeting"), got.Reason)

	list, err := svc.ListByDate(context.Background(), "2024-06-03")
	require.NoError(t, err)
	require.Len(t, list.BlockedTimes, 1)
	assert.Equal(t, got.ID, list.BlockedTimes[0].ID)
}

func TestService_Create_RejectsDuplicate(t *testing.T) {
	svc := newTestService(t)
	req := &models.CreateBlockedTimeRequest{RequesterID: "admin-1", Date: "2024-06-03", TimeStart: "12:00", TimeEnd: "13:00"}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	dup := *req
	dup.TimeStart = "12:00:00"
	_, err = svc.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, ErrDuplicate)

	other := *req
	other.TimeEnd = "13:30"
	_, err = svc.Create(context.Background(), &other)
	assert.NoError(t, err, "a different window on the same date is allowed")
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     models.CreateBlockedTimeRequest
		wantErr error
	}{
		{
			name:    "end before start",
			req:     models.CreateBlockedTimeRequest{RequesterID: "admin-1", Date: "2024-06-03", TimeStart: "13:00", TimeEnd: "12:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "bad date",
			req:     models.CreateBlockedTimeRequest{RequesterID: "admin-1", Date: "03.06.2024", TimeStart: "12:00", TimeEnd: "13:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time",
			req:     models.CreateBlockedTimeRequest{RequesterID: "admin-1", Date: "2024-06-03", TimeStart: "noon", TimeEnd: "13:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "not an admin",
			req:     models.CreateBlockedTimeRequest{RequesterID: "staff-1", Date: "2024-06-03", TimeStart: "12:00", TimeEnd: "13:00"},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "unknown requester",
			req:     models.CreateBlockedTimeRequest{RequesterID: "ghost", Date: "2024-06-03", TimeStart: "12:00", TimeEnd: "13:00"},
			wantErr: ErrRequesterNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ListByDate_InvalidDate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ListByDate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.ListByDate(context.Background(), "2024-06-04")
	require.NoError(t, err)
	assert.Empty(t, list.BlockedTimes)
}
