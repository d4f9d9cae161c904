package update_reservation_status

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation_status: reservation not found")

	// ErrInvalidStatus возвращается при отсутствующем или неизвестном статусе
	ErrInvalidStatus = errors.New("update_reservation_status: invalid reservation status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation_status: internal error")
)
