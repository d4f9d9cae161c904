package confirm_pending

import (
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

// Request модель запроса на подтверждение ожидающего бронирования
type Request struct {
	ReservationID    string  // ID бронирования
	Status           string  // Допустим только "confirmed"
	EmployeeID       string  // Назначаемый сотрудник (STAFF или ADMIN)
	ConfirmationNote *string // Комментарий к подтверждению
}

// Response модель ответа с подтвержденным бронированием
type Response = models.ReservationResponse
