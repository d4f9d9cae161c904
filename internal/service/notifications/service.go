package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
)

const (
	resultSent   = "sent"
	resultFailed = "failed"
)

// Service собирает уведомления о бронированиях и передает их Sender.
// Поведение при ошибке отправки задается режимом: propagate возвращает
// ErrNotificationFailed, log только пишет ошибку в лог.
type Service struct {
	sender   Sender
	identity IdentityClient
	recorder Recorder
	mode     domain.NotificationFailureMode
	logger   Logger
	now      func() time.Time
}

// NewService создает сервис уведомлений
func NewService(
	sender Sender,
	identityClient IdentityClient,
	recorder Recorder,
	mode domain.NotificationFailureMode,
	logger Logger,
) *Service {
	return &Service{
		sender:   sender,
		identity: identityClient,
		recorder: recorder,
		mode:     mode,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Notify отправляет уведомление о событии клиенту бронирования
func (s *Service) Notify(ctx context.Context, ev Event) error {
	n, err := s.Prepare(ctx, ev)
	if err != nil {
		return err
	}
	return s.Deliver(ctx, n)
}

// Prepare собирает уведомление и загружает получателя. Вызывается до
// транзакции, чтобы не держать ее открытой на время запроса к сервису
// пользователей. В режиме log ошибка дает nil уведомление без ошибки.
func (s *Service) Prepare(ctx context.Context, ev Event) (*domain.Notification, error) {
	n, err := s.build(ctx, ev)
	if err != nil {
		return nil, s.fail(string(ev.Kind), ev.Reservation.ID, err)
	}
	return n, nil
}

// Deliver передает готовое уведомление отправителю. nil пропускается
func (s *Service) Deliver(ctx context.Context, n *domain.Notification) error {
	if n == nil {
		return nil
	}

	kind := string(n.Event)
	if err := s.sender.Send(ctx, n); err != nil {
		return s.fail(kind, n.ReservationID, err)
	}

	s.recorder.ObserveNotification(kind, resultSent)
	s.logger.Info("Notify: event=%s reservation=%s sent to %s", kind, n.ReservationID, n.RecipientID)
	return nil
}

func (s *Service) fail(kind, reservationID string, err error) error {
	s.recorder.ObserveNotification(kind, resultFailed)
	s.logger.Error("Notify: event=%s reservation=%s failed: %v", kind, reservationID, err)
	if s.mode == domain.NotificationFailurePropagate {
		return fmt.Errorf("%w: event=%s reservation=%s: %v", ErrNotificationFailed, kind, reservationID, err)
	}
	return nil
}

func (s *Service) build(ctx context.Context, ev Event) (*domain.Notification, error) {
	recipient, err := s.recipient(ctx, ev)
	if err != nil {
		return nil, err
	}

	return &domain.Notification{
		ID:             uuid.NewString(),
		ReservationID:  ev.Reservation.ID,
		Event:          ev.Kind,
		RecipientID:    recipient.ID,
		RecipientEmail: recipient.Email,
		RecipientName:  recipient.Name,
		Subject:        subject(ev.Kind),
		Body:           body(ev, recipient),
		CreatedAt:      s.now(),
	}, nil
}

func (s *Service) recipient(ctx context.Context, ev Event) (*domain.User, error) {
	if ev.Recipient != nil {
		return ev.Recipient, nil
	}

	user, err := s.identity.GetUser(ctx, ev.Reservation.ClientID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: client=%s", ErrRecipientNotFound, ev.Reservation.ClientID)
		}
		return nil, err
	}
	return user, nil
}

// LogSender пишет уведомления в лог вместо доставки
type LogSender struct {
	logger Logger
}

// NewLogSender создает Sender, который только логирует
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send пишет уведомление в лог
func (l *LogSender) Send(_ context.Context, n *domain.Notification) error {
	l.logger.Info("LogSender: to=%s <%s> event=%s reservation=%s subject=%q",
		n.RecipientName, n.RecipientEmail, n.Event, n.ReservationID, n.Subject)
	return nil
}
