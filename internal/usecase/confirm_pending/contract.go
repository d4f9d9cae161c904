package confirm_pending

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// Checker проверка занятости сотрудника
type Checker interface {
	EnsureEmployeeFree(ctx context.Context, employeeID string, date time.Time, window domain.TimeWindow, excludeID *string) error
}

// Resolver проверка назначаемого сотрудника
type Resolver interface {
	ValidateEmployee(ctx context.Context, employeeID string, roles ...domain.Role) (*domain.User, error)
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
