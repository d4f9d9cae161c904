package confirm_rescheduled

import (
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

// Request модель запроса на решение по перенесенному бронированию
type Request struct {
	ReservationID    string  // ID бронирования
	Status           string  // "confirmed" или "cancelled"
	ConfirmationNote *string // Комментарий
}

// Response модель ответа с обновленным бронированием
type Response = models.ReservationResponse
