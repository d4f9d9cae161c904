package get_available_slots

import (
	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	EmployeeID string   `json:"employeeId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"` // ["07:00", "07:30", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		EmployeeID: resp.EmployeeID,
		Date:       domain.FormatDate(resp.Date),
		Slots:      slots,
	}
}
