package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// ReservationRepository интерфейс чтения бронирований для проверки конфликтов
type ReservationRepository interface {
	ListByEmployeeAndDate(
		ctx context.Context,
		employeeID string,
		date time.Time,
		statuses []domain.ReservationStatus,
		excludeID *string,
	) ([]*domain.Reservation, error)
	LockEmployeeDay(ctx context.Context, employeeID string, date time.Time) error
}

// BlockedTimeRepository интерфейс чтения заблокированных интервалов
type BlockedTimeRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
}

// IdentityClient интерфейс клиента хранилища пользователей
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// AnimalClient интерфейс клиента реестра животных
type AnimalClient interface {
	GetAnimal(ctx context.Context, animalID string) (*domain.Animal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
