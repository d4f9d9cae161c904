package domain

import "time"

// NotificationEvent kind of reservation event sent to the client
type NotificationEvent string

const (
	EventCreated     NotificationEvent = "created"
	EventConfirmed   NotificationEvent = "confirmed"
	EventRescheduled NotificationEvent = "rescheduled"
	EventCancelled   NotificationEvent = "cancelled"
)

// Notification is a rendered message about a reservation event
type Notification struct {
	ID             string
	ReservationID  string
	Event          NotificationEvent
	RecipientID    string
	RecipientEmail string
	RecipientName  string
	Subject        string
	Body           string
	CreatedAt      time.Time
}
