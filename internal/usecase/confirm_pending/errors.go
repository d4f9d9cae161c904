package confirm_pending

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("confirm_pending: reservation not found")

	// ErrNotPending возвращается, когда бронирование не в статусе PENDING
	ErrNotPending = errors.New("confirm_pending: reservation is not pending")

	// ErrInvalidStatus возвращается, когда запрошен статус, отличный от CONFIRMED
	ErrInvalidStatus = errors.New("confirm_pending: invalid status for confirmation")

	// ErrEmployeeRequired возвращается, когда не указан сотрудник
	ErrEmployeeRequired = errors.New("confirm_pending: employee is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_pending: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_pending: internal error")
)
