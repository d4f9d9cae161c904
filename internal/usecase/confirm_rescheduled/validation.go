package confirm_rescheduled

import (
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// validateRequest допускает только CONFIRMED или CANCELLED
func validateRequest(req *Request) (domain.ReservationStatus, error) {
	if req.ReservationID == "" {
		return "", fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil || (status != domain.StatusConfirmed && status != domain.StatusCancelled) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.ConfirmationNote != nil && len(*req.ConfirmationNote) > domain.MaxNoteLength {
		return "", fmt.Errorf("%w: confirmationNote exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return status, nil
}
