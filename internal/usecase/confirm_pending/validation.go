package confirm_pending

import (
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// validateRequest допускает только переход в CONFIRMED с указанным сотрудником
func validateRequest(req *Request) error {
	if req.ReservationID == "" {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil || status != domain.StatusConfirmed {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.EmployeeID == "" {
		return ErrEmployeeRequired
	}

	if req.ConfirmationNote != nil && len(*req.ConfirmationNote) > domain.MaxNoteLength {
		return fmt.Errorf("%w: confirmationNote exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
