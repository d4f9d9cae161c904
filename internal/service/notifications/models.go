package notifications

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// Schedule дата и интервал бронирования
type Schedule struct {
	Date   time.Time
	Window domain.TimeWindow
}

// Event событие жизненного цикла бронирования
type Event struct {
	Kind        domain.NotificationEvent
	Reservation *domain.Reservation
	Recipient   *domain.User // nil - получатель загружается по ClientID бронирования
	Previous    *Schedule    // прежние дата и время для rescheduled
	Note        *string
}
