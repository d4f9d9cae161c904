package notifications

import (
	"context"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// Sender доставляет готовое уведомление (outbox, брокер или лог)
type Sender interface {
	Send(ctx context.Context, n *domain.Notification) error
}

// IdentityClient интерфейс клиента хранилища пользователей
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// Recorder учитывает результат отправки
type Recorder interface {
	ObserveNotification(event, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
