package update_reservation_status

import (
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

// Request модель запроса на изменение статуса (и, опционально, перенос) бронирования
type Request struct {
	ReservationID  string  // ID бронирования
	Status         string  // Новый статус
	EmployeeID     *string // Переназначение сотрудника (опционально)
	NewDate        *string // Новая дата (опционально)
	NewTimeStart   *string // Новое время начала (опционально)
	NewTimeEnd     *string // Новое время окончания (опционально)
	RescheduleNote *string // Комментарий; отсутствие очищает прежний
}

// Response модель ответа с обновленным бронированием
type Response = models.ReservationResponse

// scheduleChange запрошенные поля переноса; nil-поля берутся из бронирования
type scheduleChange struct {
	date  *string
	start *string
	end   *string
}

func (r scheduleChange) requested() bool {
	return r.date != nil || r.start != nil || r.end != nil
}
