package get_client_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	got string
	err error
}

func (s *stubService) ListByClient(_ context.Context, clientID string) (*models.ReservationListResponse, error) {
	s.got = clientID
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: "res-1", ClientID: clientID}}}, nil
}

func serve(svc *stubService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}/reservations", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/client-1/reservations", nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-1", svc.got)
	assert.Contains(t, rec.Body.String(), `"clientId":"client-1"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"internal", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&stubService{err: tt.err}).Code)
		})
	}
}
