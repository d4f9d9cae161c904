package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/txmanager"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db))

	return db
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(newTestDB(t))
}

func TestRepository_SendAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &domain.Notification{
		ReservationID:  "r1",
		Event:          domain.EventCreated,
		RecipientID:    "c1",
		RecipientEmail: "owner@example.com",
		RecipientName:  "Ana",
		Subject:        "Reservation created",
		Body:           "body",
		CreatedAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	second := &domain.Notification{
		ReservationID: "r1",
		Event:         domain.EventConfirmed,
		RecipientID:   "c1",
		Subject:       "Reservation confirmed",
		CreatedAt:     time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Send(ctx, second))
	require.NoError(t, repo.Send(ctx, first))
	require.NoError(t, repo.Send(ctx, &domain.Notification{ReservationID: "r2", Event: domain.EventCreated, RecipientID: "c2"}))

	assert.NotEmpty(t, first.ID)

	list, err := repo.ListByReservation(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, domain.EventCreated, list[0].Event)
	assert.Equal(t, "owner@example.com", list[0].RecipientEmail)
	assert.Equal(t, domain.EventConfirmed, list[1].Event)

	none, err := repo.ListByReservation(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_SendJoinsTransaction(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	txManager := txmanager.NewTransactionManager(dbmetrics.Wrap(db.DB, nil))

	// одно соединение: запись мимо транзакции зависла бы до таймаута
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	errAbort := errors.New("abort")
	err := txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := repo.Send(txCtx, &domain.Notification{ReservationID: "r1", Event: domain.EventConfirmed, RecipientID: "c1"}); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	list, err := repo.ListByReservation(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, list)

	err = txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return repo.Send(txCtx, &domain.Notification{ReservationID: "r1", Event: domain.EventConfirmed, RecipientID: "c1"})
	})
	require.NoError(t, err)

	list, err = repo.ListByReservation(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.EventConfirmed, list[0].Event)
}
