package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(requesterID))
	if err != nil {
		if m, ok := handlers.RespondMapped(w, err, handlers.SchedulingErrors); ok {
			h.logger.Warn("POST /reservations - Rejected (%d): requester=%s, animal=%s: %v",
				m.Status, requesterID, req.AnimalID, err)
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: requester=%s: %v", requesterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: requester=%s, error=%v", requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
