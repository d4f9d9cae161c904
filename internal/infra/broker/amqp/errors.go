package amqp

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру или объявить exchange
	ErrConnect = errors.New("amqp publisher: failed to connect")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("amqp publisher: failed to publish")
)
