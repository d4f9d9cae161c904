package notification

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// record строка таблицы notifications
type record struct {
	ID             string    `db:"id"`
	ReservationID  string    `db:"reservation_id"`
	Event          string    `db:"event"`
	RecipientID    string    `db:"recipient_id"`
	RecipientEmail string    `db:"recipient_email"`
	RecipientName  string    `db:"recipient_name"`
	Subject        string    `db:"subject"`
	Body           string    `db:"body"`
	CreatedAt      time.Time `db:"created_at"`
}

func fromDomain(n *domain.Notification) record {
	return record{
		ID:             n.ID,
		ReservationID:  n.ReservationID,
		Event:          string(n.Event),
		RecipientID:    n.RecipientID,
		RecipientEmail: n.RecipientEmail,
		RecipientName:  n.RecipientName,
		Subject:        n.Subject,
		Body:           n.Body,
		CreatedAt:      n.CreatedAt,
	}
}

func (r record) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:             r.ID,
		ReservationID:  r.ReservationID,
		Event:          domain.NotificationEvent(r.Event),
		RecipientID:    r.RecipientID,
		RecipientEmail: r.RecipientEmail,
		RecipientName:  r.RecipientName,
		Subject:        r.Subject,
		Body:           r.Body,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}
