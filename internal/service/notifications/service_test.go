package notifications

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/logger"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/ptr"
)

type recordingSender struct {
	sent []*domain.Notification
	err  error
}

func (s *recordingSender) Send(_ context.Context, n *domain.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

type fakeIdentity struct {
	users map[string]*domain.User
}

func (f *fakeIdentity) GetUser(_ context.Context, userID string) (*domain.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, identity.ErrUserNotFound
}

func testReservation() *domain.Reservation {
	r := &domain.Reservation{
		ID:        "res-1",
		AnimalID:  "animal-1",
		ClientID:  "client-1",
		Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		TimeStart: "10:00",
		TimeEnd:   "10:30",
		Reason:    ptr.Ptr("vaccination"),
		Status:    domain.StatusPending,
	}
	r.Normalize()
	return r
}

func newTestService(sender Sender, mode domain.NotificationFailureMode) (*Service, *metrics.Metrics) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	ids := &fakeIdentity{users: map[string]*domain.User{
		"client-1": {ID: "client-1", Role: domain.RoleClient, Email: "anna@example.com", Name: "Anna"},
	}}
	log := logger.NewWithWriter(&bytes.Buffer{}, logger.LevelDebug)
	return NewService(sender, ids, m, mode, log), m
}

func TestService_Notify_Created(t *testing.T) {
	sender := &recordingSender{}
	svc, m := newTestService(sender, domain.NotificationFailurePropagate)

	err := svc.Notify(context.Background(), Event{Kind: domain.EventCreated, Reservation: testReservation()})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	n := sender.sent[0]
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "res-1", n.ReservationID)
	assert.Equal(t, domain.EventCreated, n.Event)
	assert.Equal(t, "client-1", n.RecipientID)
	assert.Equal(t, "anna@example.com", n.RecipientEmail)
	assert.Equal(t, "Your reservation has been received", n.Subject)
	assert.Contains(t, n.Body, "Hello, Anna!")
	assert.Contains(t, n.Body, "2024-06-03 10:00-10:30")
	assert.Contains(t, n.Body, "status pending")
	assert.Contains(t, n.Body, "vaccination")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("test", "created", "sent")))
}

func TestService_Notify_RescheduledCarriesBothWindows(t *testing.T) {
	sender := &recordingSender{}
	svc, _ := newTestService(sender, domain.NotificationFailurePropagate)

	r := testReservation()
	r.Reschedule(time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), domain.TimeWindow{Start: "14:00", End: "14:30"})

	err := svc.Notify(context.Background(), Event{
		Kind:        domain.EventRescheduled,
		Reservation: r,
		Previous: &Schedule{
			Date:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Window: domain.TimeWindow{Start: "10:00", End: "10:30"},
		},
		Note: ptr.Ptr("doctor is away"),
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	body := sender.sent[0].Body
	assert.Contains(t, body, "from 2024-06-03 10:00-10:30 to 2024-06-04 14:00-14:30")
	assert.Contains(t, body, "doctor is away")
}

func TestService_Notify_ExplicitRecipient(t *testing.T) {
	sender := &recordingSender{}
	svc, _ := newTestService(sender, domain.NotificationFailurePropagate)

	r := testReservation()
	r.ClientID = "unknown-in-identity"
	err := svc.Notify(context.Background(), Event{
		Kind:        domain.EventConfirmed,
		Reservation: r,
		Recipient:   &domain.User{ID: "client-9", Email: "x@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "client-9", sender.sent[0].RecipientID)
	assert.Contains(t, sender.sent[0].Body, "Hello!")
}

func TestService_Notify_FailureModes(t *testing.T) {
	sendErr := errors.New("smtp down")

	t.Run("propagate", func(t *testing.T) {
		svc, m := newTestService(&recordingSender{err: sendErr}, domain.NotificationFailurePropagate)

		err := svc.Notify(context.Background(), Event{Kind: domain.EventConfirmed, Reservation: testReservation()})
		assert.ErrorIs(t, err, ErrNotificationFailed)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("test", "confirmed", "failed")))
	})

	t.Run("log", func(t *testing.T) {
		svc, m := newTestService(&recordingSender{err: sendErr}, domain.NotificationFailureLog)

		err := svc.Notify(context.Background(), Event{Kind: domain.EventConfirmed, Reservation: testReservation()})
		assert.NoError(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("test", "confirmed", "failed")))
	})

	t.Run("unknown recipient", func(t *testing.T) {
		sender := &recordingSender{}
		svc, _ := newTestService(sender, domain.NotificationFailurePropagate)

		r := testReservation()
		r.ClientID = "ghost"
		err := svc.Notify(context.Background(), Event{Kind: domain.EventCancelled, Reservation: r})
		assert.ErrorIs(t, err, ErrNotificationFailed)
		assert.Empty(t, sender.sent)
	})
}

func TestService_PrepareThenDeliver(t *testing.T) {
	sender := &recordingSender{}
	svc, _ := newTestService(sender, domain.NotificationFailurePropagate)

	n, err := svc.Prepare(context.Background(), Event{Kind: domain.EventConfirmed, Reservation: testReservation()})
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "anna@example.com", n.RecipientEmail)
	assert.Empty(t, sender.sent)

	require.NoError(t, svc.Deliver(context.Background(), n))
	require.Len(t, sender.sent, 1)
	assert.Same(t, n, sender.sent[0])

	t.Run("unknown recipient in log mode yields nothing to deliver", func(t *testing.T) {
		sender := &recordingSender{}
		svc, m := newTestService(sender, domain.NotificationFailureLog)

		r := testReservation()
		r.ClientID = "ghost"
		n, err := svc.Prepare(context.Background(), Event{Kind: domain.EventConfirmed, Reservation: r})
		require.NoError(t, err)
		assert.Nil(t, n)

		require.NoError(t, svc.Deliver(context.Background(), n))
		assert.Empty(t, sender.sent)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("test", "confirmed", "failed")))
	})
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(logger.NewWithWriter(&buf, logger.LevelInfo))

	require.NoError(t, s.Send(context.Background(), &domain.Notification{
		ReservationID:  "res-1",
		Event:          domain.EventCreated,
		RecipientEmail: "anna@example.com",
		Subject:        "hi",
	}))
	assert.Contains(t, buf.String(), "anna@example.com")
	assert.Contains(t, buf.String(), "reservation=res-1")
}
