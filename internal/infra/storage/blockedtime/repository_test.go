package blockedtime

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	require.NoError(t, schema.Apply(context.Background(), raw))

	return NewRepository(dbmetrics.Wrap(raw, nil), psqlbuilder.SQLite)
}

func TestRepository_CreateAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.BlockedTime{Date: monday, TimeStart: "14:00", TimeEnd: "15:00"})
	require.NoError(t, err)
	created, err := repo.Create(ctx, &domain.BlockedTime{Date: monday.Add(5 * time.Hour), TimeStart: "12:00", TimeEnd: "13:00", Reason: ptr.Ptr("staff meeting")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, monday, created.Date)
	assert.Equal(t, time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC), created.End)

	_, err = repo.Create(ctx, &domain.BlockedTime{Date: monday.AddDate(0, 0, 1), TimeStart: "12:00", TimeEnd: "13:00"})
	require.NoError(t, err)

	list, err := repo.ListByDate(ctx, monday)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, types.TimeString("12:00"), list[0].TimeStart)
	assert.Equal(t, ptr.Ptr("staff meeting"), list[0].Reason)
	assert.Equal(t, types.TimeString("14:00"), list[1].TimeStart)
	assert.Nil(t, list[1].Reason)
	assert.True(t, list[0].Date.Equal(monday))

	empty, err := repo.ListByDate(ctx, monday.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.BlockedTime{Date: monday, TimeStart: "12:00", TimeEnd: "13:00"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.BlockedTime{Date: monday, TimeStart: "12:00", TimeEnd: "13:00"})
	assert.ErrorIs(t, err, ErrDuplicateBlockedTime)

	_, err = repo.Create(ctx, &domain.BlockedTime{Date: monday, TimeStart: "12:00", TimeEnd: "12:30"})
	assert.NoError(t, err)
}

func TestRepository_FindExact(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.BlockedTime{Date: monday, TimeStart: "12:00", TimeEnd: "13:00"})
	require.NoError(t, err)

	found, err := repo.FindExact(ctx, monday, domain.TimeWindow{Start: "12:00", End: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindExact(ctx, monday, domain.TimeWindow{Start: "12:00", End: "12:59"})
	assert.ErrorIs(t, err, ErrBlockedTimeNotFound)
}
