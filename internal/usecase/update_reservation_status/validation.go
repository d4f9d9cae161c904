package update_reservation_status

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// validateRequest проверяет идентификатор, статус и длину комментария
func validateRequest(req *Request) (domain.ReservationStatus, error) {
	if req.ReservationID == "" {
		return "", fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if req.RescheduleNote != nil && len(*req.RescheduleNote) > domain.MaxNoteLength {
		return "", fmt.Errorf("%w: rescheduleNote exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return status, nil
}

// resolveSchedule возвращает новые дату и интервал: незаданные поля берутся из бронирования
func resolveSchedule(current *domain.Reservation, r scheduleChange) (time.Time, domain.TimeWindow, error) {
	date := current.Date
	window := current.Window()

	if r.date != nil {
		parsed, err := domain.ParseDate(*r.date)
		if err != nil {
			return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: invalid newDate: %v", ErrInvalidInput, err)
		}
		date = parsed
	}

	if r.start != nil {
		start, err := types.NewTimeStringFromString(*r.start)
		if err != nil {
			return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: invalid newTimeStart: %v", ErrInvalidInput, err)
		}
		window.Start = start
	}

	if r.end != nil {
		end, err := types.NewTimeStringFromString(*r.end)
		if err != nil {
			return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: invalid newTimeEnd: %v", ErrInvalidInput, err)
		}
		window.End = end
	}

	return date, window, nil
}
