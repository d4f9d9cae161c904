package update_reservation_status

import (
	updateStatus "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/update_reservation_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status         string  `json:"status"`
	EmployeeID     *string `json:"employeeId,omitempty"`
	NewDate        *string `json:"newDate,omitempty"`      // "2024-06-04"
	NewTimeStart   *string `json:"newTimeStart,omitempty"` // "11:00"
	NewTimeEnd     *string `json:"newTimeEnd,omitempty"`   // "11:30"
	RescheduleNote *string `json:"rescheduleNote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(reservationID string) *updateStatus.Request {
	return &updateStatus.Request{
		ReservationID:  reservationID,
		Status:         r.Status,
		EmployeeID:     r.EmployeeID,
		NewDate:        r.NewDate,
		NewTimeStart:   r.NewTimeStart,
		NewTimeEnd:     r.NewTimeEnd,
		RescheduleNote: r.RescheduleNote,
	}
}
