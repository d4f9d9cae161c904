package blockedtimes

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blocked times: invalid input data")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("blocked times: end time must be after start time")

	// ErrDuplicate возвращается, когда такая блокировка уже существует
	ErrDuplicate = errors.New("blocked times: blocked time already exists")

	// ErrRequesterNotFound возвращается, когда инициатор запроса не найден
	ErrRequesterNotFound = errors.New("blocked times: requester not found")

	// ErrAccessDenied возвращается, когда блокировку создает не администратор
	ErrAccessDenied = errors.New("blocked times: only administrators can block time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocked times: internal error")
)
