package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
)

const insertQuery = `
	INSERT INTO notifications (
		id, reservation_id, event, recipient_id, recipient_email, recipient_name, subject, body, created_at
	) VALUES (
		:id, :reservation_id, :event, :recipient_id, :recipient_email, :recipient_name, :subject, :body, :created_at
	)`

const selectByReservationQuery = `
	SELECT id, reservation_id, event, recipient_id, recipient_email, recipient_name, subject, body, created_at
	FROM notifications
	WHERE reservation_id = ?
	ORDER BY created_at ASC`

// Repository outbox уведомлений: письма забирает внешний почтовый воркер
type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewRepository создает outbox поверх sqlx.DB
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Send кладет уведомление в outbox. Внутри транзакции из контекста запись
// фиксируется и откатывается вместе с ней
func (r *Repository) Send(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now()
	}

	query, args, err := sqlx.Named(insertQuery, fromDomain(n))
	if err != nil {
		return fmt.Errorf("%w: Send - bind notification: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("%w: Send - insert notification: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByReservation возвращает уведомления по бронированию в порядке создания
func (r *Repository) ListByReservation(ctx context.Context, reservationID string) ([]*domain.Notification, error) {
	var records []record
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(selectByReservationQuery), reservationID); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - select notifications: %v", ErrExecQuery, err)
	}

	result := make([]*domain.Notification, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.toDomain())
	}

	return result, nil
}
