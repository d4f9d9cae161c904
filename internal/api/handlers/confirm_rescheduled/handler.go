package confirm_rescheduled

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	confirmRescheduled "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_rescheduled"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgNotRescheduled     = "бронирование не находится в статусе переноса"
	msgInvalidStatus      = "допустимы только статусы confirmed и cancelled"
	msgEmployeeRequired   = "у бронирования не назначен сотрудник"
	msgInvalidInput       = "некорректные данные подтверждения"
	msgNotConfirmed       = "бронирование не подтверждено: не удалось отправить уведомление"
)

// confirmationErrors проверяются раньше общих: при подтверждении ошибка
// уведомления откатывает изменение
var confirmationErrors = []handlers.ErrorMapping{
	{Err: confirmRescheduled.ErrConfirmationNotSent, Status: http.StatusBadGateway, Message: msgNotConfirmed},
}

type Handler struct {
	useCase ConfirmRescheduledUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmRescheduledUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/confirm-rescheduled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req ConfirmRescheduledRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/confirm-rescheduled - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		if m, ok := handlers.RespondMapped(w, err, confirmationErrors, handlers.SchedulingErrors); ok {
			h.logger.Warn("PATCH /reservations/{id}/confirm-rescheduled - Rejected (%d): reservation_id=%s: %v",
				m.Status, reservationID, err)
			return
		}

		switch {
		case errors.Is(err, confirmRescheduled.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/confirm-rescheduled - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmRescheduled.ErrNotRescheduled):
			h.logger.Warn("PATCH /reservations/{id}/confirm-rescheduled - Not rescheduled: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgNotRescheduled)

		case errors.Is(err, confirmRescheduled.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, confirmRescheduled.ErrEmployeeRequired):
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, confirmRescheduled.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id}/confirm-rescheduled - Failed: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/confirm-rescheduled - Reservation updated: reservation_id=%s, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
