package confirm_pending

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	confirmPending "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_pending"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgNotPending         = "подтвердить можно только бронирование в статусе ожидания"
	msgInvalidStatus      = "допустим только статус confirmed"
	msgEmployeeRequired   = "не указан сотрудник"
	msgInvalidInput       = "некорректные данные подтверждения"
)

type Handler struct {
	useCase ConfirmPendingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPendingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/confirm-pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req ConfirmPendingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/confirm-pending - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		if m, ok := handlers.RespondMapped(w, err, handlers.SchedulingErrors); ok {
			h.logger.Warn("PATCH /reservations/{id}/confirm-pending - Rejected (%d): reservation_id=%s: %v",
				m.Status, reservationID, err)
			return
		}

		switch {
		case errors.Is(err, confirmPending.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/confirm-pending - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPending.ErrNotPending):
			h.logger.Warn("PATCH /reservations/{id}/confirm-pending - Not pending: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, confirmPending.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, confirmPending.ErrEmployeeRequired):
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, confirmPending.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/confirm-pending - Invalid input: reservation_id=%s: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id}/confirm-pending - Failed to confirm reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/confirm-pending - Reservation confirmed: reservation_id=%s, employee_id=%s",
		result.ID, req.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
