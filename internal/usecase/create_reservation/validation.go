package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// parseRequest проверяет обязательные поля и разбирает дату и время.
// Порядок границ и рабочее время проверяет scheduling.Checker.
func parseRequest(req *Request) (time.Time, domain.TimeWindow, error) {
	if req.RequesterID == "" {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: requester id is required", ErrInvalidInput)
	}

	if req.AnimalID == "" {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: animalId is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.TimeStart)
	if err != nil {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: invalid timeStart: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.TimeEnd)
	if err != nil {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: invalid timeEnd: %v", ErrInvalidInput, err)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return date, domain.TimeWindow{Start: start, End: end}, nil
}
