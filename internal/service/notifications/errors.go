package notifications

import "errors"

var (
	// ErrNotificationFailed возвращается, когда уведомление не удалось отправить
	ErrNotificationFailed = errors.New("notifications: failed to send notification")

	// ErrRecipientNotFound возвращается, когда получатель не найден
	ErrRecipientNotFound = errors.New("notifications: recipient not found")
)
