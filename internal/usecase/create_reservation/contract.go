package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// Checker проверки допустимости интервала
type Checker interface {
	CheckFeasibility(ctx context.Context, date time.Time, window domain.TimeWindow) error
	EnsureEmployeeFree(ctx context.Context, employeeID string, date time.Time, window domain.TimeWindow, excludeID *string) error
}

// Resolver определение участников бронирования
type Resolver interface {
	ResolveRequester(ctx context.Context, requesterID string) (*domain.User, error)
	ResolveClient(ctx context.Context, requester *domain.User, explicitClientID *string) (*domain.User, error)
	ValidateAnimalOwnership(ctx context.Context, animalID string, client *domain.User) (*domain.Animal, error)
	ResolveEmployee(ctx context.Context, requester *domain.User, explicitEmployeeID *string) (*domain.User, error)
}

// Notifier отправка уведомлений о бронированиях
type Notifier interface {
	Notify(ctx context.Context, ev notifications.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Recorder учет операций с бронированиями в метриках
type Recorder interface {
	ObserveReservation(operation, status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
