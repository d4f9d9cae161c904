package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректная дата или время блокировки"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgDuplicate          = "такая блокировка уже существует"
	msgRequesterNotFound  = "пользователь не найден"
	msgForbidden          = "блокировать время может только администратор"
)

type Handler struct {
	service BlockedTimeService
	logger  Logger
}

func NewHandler(service BlockedTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /blocked-times - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterID = requesterID

	blocked, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedtimes.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blockedtimes.ErrInvalidInput):
			h.logger.Warn("POST /blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blockedtimes.ErrDuplicate):
			h.logger.Warn("POST /blocked-times - Duplicate: date=%s, %s-%s", req.Date, req.TimeStart, req.TimeEnd)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, blockedtimes.ErrRequesterNotFound):
			handlers.RespondNotFound(w, msgRequesterNotFound)

		case errors.Is(err, blockedtimes.ErrAccessDenied):
			h.logger.Warn("POST /blocked-times - Access denied: user_id=%s", requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /blocked-times - Failed to create blocked time: user_id=%s, error=%v", requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-times - Blocked time created: id=%s, date=%s, %s-%s",
		blocked.ID, blocked.Date, blocked.TimeStart, blocked.TimeEnd)
	handlers.RespondJSON(w, http.StatusCreated, blocked)
}
