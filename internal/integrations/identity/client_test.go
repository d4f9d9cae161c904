package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/users/u1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1","role":"staff","email":"vet@example.com","name":"Dr. Silva"}`))
		case "/internal/users/broken":
			_, _ = w.Write([]byte(`{not json`))
		case "/internal/users/down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetUser(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/", time.Second, nopLogger{})

	user, err := client.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: "u1", Role: domain.RoleStaff, Email: "vet@example.com", Name: "Dr. Silva"}, user)
}

func TestClient_GetUserErrors(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	tests := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{name: "not found", userID: "missing", wantErr: ErrUserNotFound},
		{name: "bad payload", userID: "broken", wantErr: ErrInvalidResponse},
		{name: "unavailable", userID: "down", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GetUser(context.Background(), tt.userID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetUserUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	_, err := client.GetUser(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrInternal)
}
