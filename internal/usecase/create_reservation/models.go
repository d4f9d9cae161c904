package create_reservation

import (
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

// Request модель запроса на создание бронирования
type Request struct {
	RequesterID string  // ID инициатора (заголовок X-User-ID)
	AnimalID    string  // ID животного
	Date        string  // Дата "2024-06-03"
	TimeStart   string  // Время начала "HH:mm"
	TimeEnd     string  // Время окончания "HH:mm"
	Reason      *string // Причина визита (опционально)
	ClientID    *string // Клиент, если бронирует сотрудник или администратор
	EmployeeID  *string // Назначаемый сотрудник (опционально)
}

// Response модель ответа с созданным бронированием
type Response = models.ReservationResponse
