package get_client_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations"
)

const msgInvalidClientID = "некорректный ID клиента"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	list, err := h.service.ListByClient(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /clients/{id}/reservations - Invalid client ID: %q", clientID)
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}
		h.logger.Error("GET /clients/{id}/reservations - Failed to list reservations: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/reservations - Reservations retrieved: client_id=%s, count=%d",
		clientID, len(list.Reservations))
	handlers.RespondJSON(w, http.StatusOK, list)
}
