package get_employee_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgEmployeeNotFound  = "сотрудник не найден"
)

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

// Handle GET /api/v1/employees/{employeeId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	list, err := h.service.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/reservations - Invalid employee ID: %q", employeeID)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		case errors.Is(err, reservations.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/reservations - Employee not found: employee_id=%s", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		default:
			h.logger.Error("GET /employees/{id}/reservations - Failed to list reservations: employee_id=%s, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/reservations - Reservations retrieved: employee_id=%s, count=%d",
		employeeID, len(list.Reservations))
	handlers.RespondJSON(w, http.StatusOK, list)
}
