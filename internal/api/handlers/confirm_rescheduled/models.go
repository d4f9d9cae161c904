package confirm_rescheduled

import (
	confirmRescheduled "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_rescheduled"
)

// ConfirmRescheduledRequest HTTP request model
type ConfirmRescheduledRequest struct {
	Status           string  `json:"status"` // "confirmed" или "cancelled"
	ConfirmationNote *string `json:"confirmationNote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmRescheduledRequest) ToUseCaseRequest(reservationID string) *confirmRescheduled.Request {
	return &confirmRescheduled.Request{
		ReservationID:    reservationID,
		Status:           r.Status,
		ConfirmationNote: r.ConfirmationNote,
	}
}
