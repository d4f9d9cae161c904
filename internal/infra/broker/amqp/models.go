package amqp

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// Message тело сообщения в exchange
type Message struct {
	ID             string    `json:"id"`
	ReservationID  string    `json:"reservation_id"`
	Event          string    `json:"event"`
	RecipientID    string    `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

func newMessage(n *domain.Notification) Message {
	return Message{
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
