package blockedtimes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория блокировок
type BlockedTimeRepository interface {
	Create(ctx context.Context, blocked *domain.BlockedTime) (*domain.BlockedTime, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
	FindExact(ctx context.Context, date time.Time, window domain.TimeWindow) (*domain.BlockedTime, error)
}

// IdentityClient интерфейс клиента хранилища пользователей
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
