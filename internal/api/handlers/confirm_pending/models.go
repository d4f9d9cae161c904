package confirm_pending

import (
	confirmPending "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_pending"
)

// ConfirmPendingRequest HTTP request model
type ConfirmPendingRequest struct {
	Status           string  `json:"status"` // "confirmed"
	EmployeeID       string  `json:"employeeId"`
	ConfirmationNote *string `json:"confirmationNote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmPendingRequest) ToUseCaseRequest(reservationID string) *confirmPending.Request {
	return &confirmPending.Request{
		ReservationID:    reservationID,
		Status:           r.Status,
		EmployeeID:       r.EmployeeID,
		ConfirmationNote: r.ConfirmationNote,
	}
}
