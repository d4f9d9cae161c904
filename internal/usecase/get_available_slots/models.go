package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// Request модель запроса на получение свободных слотов сотрудника
type Request struct {
	EmployeeID string // ID сотрудника
	Date       string // Дата "2024-06-03"
}

// Response модель ответа со списком свободных слотов
type Response struct {
	EmployeeID string             // ID сотрудника
	Date       time.Time          // Дата, на которую запрашивались слоты
	Slots      []types.TimeString // Время начала свободных слотов "HH:mm"
}
