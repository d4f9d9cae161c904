package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/get_available_slots"
)

const msgInvalidInput = "некорректные параметры запроса, ожидается date=YYYY-MM-DD"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.Request{
		EmployeeID: mux.Vars(r)["employeeId"],
		Date:       handlers.QueryParam(r, "date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/available-slots - Invalid input: employee_id=%s, date=%q: %v",
				req.EmployeeID, req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /employees/{id}/available-slots - Failed to get slots: employee_id=%s, error=%v",
				req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/available-slots - Slots retrieved: employee_id=%s, date=%s, count=%d",
		req.EmployeeID, req.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
