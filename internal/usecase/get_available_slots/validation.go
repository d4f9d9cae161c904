package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// validateRequest проверяет сотрудника и разбирает дату
func validateRequest(req *Request) (time.Time, error) {
	if req.EmployeeID == "" {
		return time.Time{}, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	return date, nil
}
