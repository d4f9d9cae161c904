package get_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	list *models.ReservationListResponse
	err  error
}

func (s *stubService) ListAll(context.Context) (*models.ReservationListResponse, error) {
	return s.list, s.err
}

func TestHandle(t *testing.T) {
	svc := &stubService{list: &models.ReservationListResponse{Reservations: []models.ReservationResponse{
		{ID: "res-1"}, {ID: "res-2"},
	}}}

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ReservationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Reservations, 2)
	assert.Equal(t, "res-2", body.Reservations[1].ID)
}

func TestHandle_Failure(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: reservations.ErrInternal}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
