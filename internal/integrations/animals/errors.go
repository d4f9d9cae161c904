package animals

import "errors"

var (
	// ErrAnimalNotFound возвращается, когда животное не найдено
	ErrAnimalNotFound = errors.New("animals client: animal not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("animals client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("animals client: invalid response")
)
