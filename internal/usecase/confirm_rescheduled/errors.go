package confirm_rescheduled

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("confirm_rescheduled: reservation not found")

	// ErrNotRescheduled возвращается, когда бронирование не в статусе RESCHEDULED
	ErrNotRescheduled = errors.New("confirm_rescheduled: reservation is not rescheduled")

	// ErrInvalidStatus возвращается, когда запрошен статус, отличный от CONFIRMED и CANCELLED
	ErrInvalidStatus = errors.New("confirm_rescheduled: invalid status for confirmation")

	// ErrEmployeeRequired возвращается при подтверждении бронирования без сотрудника
	ErrEmployeeRequired = errors.New("confirm_rescheduled: reservation has no assigned employee")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_rescheduled: invalid input data")

	// ErrConfirmationNotSent возвращается, когда уведомление о подтверждении
	// не отправлено и бронирование осталось в статусе RESCHEDULED
	ErrConfirmationNotSent = errors.New("confirm_rescheduled: confirmation notification not sent, reservation unchanged")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_rescheduled: internal error")
)
