package get_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err error
}

func (s *stubService) GetByID(_ context.Context, id string) (*models.ReservationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationResponse{ID: id, Status: "pending"}, nil
}

func serve(svc *stubService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/res-1", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&stubService{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"res-1"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"not found", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"internal", reservations.ErrInternal, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&stubService{err: tt.err}).Code)
		})
	}
}
