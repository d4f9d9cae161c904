package get_blocked_times

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes"
)

const msgInvalidDate = "некорректный формат даты, ожидается date=YYYY-MM-DD"

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

// Handle GET /api/v1/blocked-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := handlers.QueryParam(r, "date")

	list, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, blockedtimes.ErrInvalidInput) {
			h.logger.Warn("GET /blocked-times - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /blocked-times - Failed to list blocked times: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-times - Blocked times retrieved: date=%s, count=%d", date, len(list.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, list)
}
