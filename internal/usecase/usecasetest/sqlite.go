package usecasetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	blockedtimeRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/blockedtime"
	notificationRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/notification"
	reservationRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/txmanager"
)

// Stack собран так же, как в cmd/main.go для sqlite3 с outbox:
// одно соединение, реальные репозитории, менеджер транзакций и сервис уведомлений
type Stack struct {
	Reservations *reservationRepo.Repository
	BlockedTimes *blockedtimeRepo.Repository
	Outbox       *notificationRepo.Repository
	TxManager    *txmanager.TransactionManager
	Checker      *scheduling.Checker
	Resolver     *scheduling.Resolver
	Notifier     *notifications.Service
	Identity     Identity
}

// NewSQLiteStack поднимает Stack поверх SQLite в памяти
func NewSQLiteStack(t testing.TB, mode domain.NotificationFailureMode) *Stack {
	t.Helper()

	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	require.NoError(t, schema.Apply(context.Background(), raw))

	db := dbmetrics.Wrap(raw, nil)
	policy := domain.DefaultSchedulingPolicy()
	policy.NotificationFailure = mode

	var recorder *metrics.Metrics
	log := NopLogger{}

	s := &Stack{
		Reservations: reservationRepo.NewRepository(db, psqlbuilder.SQLite),
		BlockedTimes: blockedtimeRepo.NewRepository(db, psqlbuilder.SQLite),
		Outbox:       notificationRepo.NewRepository(sqlx.NewDb(raw, "sqlite3")),
		TxManager:    txmanager.NewTransactionManager(db),
		Identity:     DefaultIdentity(),
	}
	s.Checker = scheduling.NewChecker(s.Reservations, s.BlockedTimes, policy, log)
	s.Resolver = scheduling.NewResolver(s.Identity, DefaultAnimals(), log)
	s.Notifier = notifications.NewService(s.Outbox, s.Identity, recorder, mode, log)

	return s
}

// Seed сохраняет бронирование напрямую в репозиторий
func (s *Stack) Seed(t testing.TB, res *domain.Reservation) *domain.Reservation {
	t.Helper()

	created, err := s.Reservations.Create(context.Background(), res)
	require.NoError(t, err)
	return created
}

// Events возвращает типы уведомлений, лежащих в outbox для бронирования
func (s *Stack) Events(t testing.TB, reservationID string) []domain.NotificationEvent {
	t.Helper()

	list, err := s.Outbox.ListByReservation(context.Background(), reservationID)
	require.NoError(t, err)

	events := make([]domain.NotificationEvent, len(list))
	for i, n := range list {
		events[i] = n.Event
	}
	return events
}

// Stored перечитывает бронирование из базы
func (s *Stack) Stored(t testing.TB, id string) *domain.Reservation {
	t.Helper()

	res, err := s.Reservations.GetByID(context.Background(), id)
	require.NoError(t, err)
	return res
}
