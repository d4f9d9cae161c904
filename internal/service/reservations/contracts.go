package reservations

import (
	"context"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// ReservationRepository интерфейс чтения бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Reservation, error)
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
