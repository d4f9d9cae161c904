// Package usecasetest содержит in-memory реализации зависимостей use case'ов для тестов
package usecasetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/animals"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// Monday 2024-06-03, рабочий день
var Monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

// NopLogger ничего не пишет
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// Reservations хранилище бронирований в памяти
type Reservations struct {
	mu      sync.Mutex
	items   map[string]*domain.Reservation
	Locks   []string
	Updates int
}

// NewReservations создает хранилище с начальными бронированиями
func NewReservations(items ...*domain.Reservation) *Reservations {
	r := &Reservations{items: make(map[string]*domain.Reservation)}
	for _, item := range items {
		item.Normalize()
		r.items[item.ID] = item
	}
	return r
}

func (r *Reservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	res.Normalize()
	res.CreatedAt = time.Now().UTC()
	res.UpdatedAt = res.CreatedAt

	stored := *res
	r.items[res.ID] = &stored
	return res, nil
}

func (r *Reservations) Update(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[res.ID]; !ok {
		return nil, reservation.ErrReservationNotFound
	}
	res.Normalize()
	res.UpdatedAt = time.Now().UTC()

	stored := *res
	r.items[res.ID] = &stored
	r.Updates++
	return res, nil
}

func (r *Reservations) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.items[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	out := *res
	return &out, nil
}

func (r *Reservations) ListByEmployeeAndDate(
	_ context.Context,
	employeeID string,
	date time.Time,
	statuses []domain.ReservationStatus,
	excludeID *string,
) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := domain.NormalizeDate(date)
	out := make([]*domain.Reservation, 0)
	for _, res := range r.items {
		if !res.HasEmployee() || *res.EmployeeID != employeeID || !res.Date.Equal(day) {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, res.Status) {
			continue
		}
		item := *res
		out = append(out, &item)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TimeStart.IsBefore(out[j].TimeStart) })
	return out, nil
}

func (r *Reservations) LockEmployeeDay(_ context.Context, employeeID string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Locks = append(r.Locks, fmt.Sprintf("%s@%s", employeeID, domain.FormatDate(date)))
	return nil
}

// Len возвращает количество сохраненных бронирований
func (r *Reservations) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func containsStatus(statuses []domain.ReservationStatus, s domain.ReservationStatus) bool {
	for _, status := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

// BlockedTimes блокировки в памяти
type BlockedTimes struct {
	Items []*domain.BlockedTime
}

func (b *BlockedTimes) ListByDate(_ context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	day := domain.NormalizeDate(date)
	out := make([]*domain.BlockedTime, 0)
	for _, item := range b.Items {
		item.Normalize()
		if item.Date.Equal(day) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Identity хранилище пользователей в памяти
type Identity map[string]*domain.User

func (i Identity) GetUser(_ context.Context, userID string) (*domain.User, error) {
	if u, ok := i[userID]; ok {
		return u, nil
	}
	return nil, identity.ErrUserNotFound
}

// DefaultIdentity набор пользователей для тестов use case'ов
func DefaultIdentity() Identity {
	return Identity{
		"client-1": {ID: "client-1", Role: domain.RoleClient, Email: "anna@example.com", Name: "Anna"},
		"client-2": {ID: "client-2", Role: domain.RoleClient, Email: "boris@example.com", Name: "Boris"},
		"staff-1":  {ID: "staff-1", Role: domain.RoleStaff, Email: "vet1@example.com", Name: "Dr. One"},
		"staff-2":  {ID: "staff-2", Role: domain.RoleStaff, Email: "vet2@example.com", Name: "Dr. Two"},
		"admin-1":  {ID: "admin-1", Role: domain.RoleAdmin, Email: "admin@example.com", Name: "Admin"},
	}
}

// Animals реестр животных в памяти
type Animals map[string]*domain.Animal

func (a Animals) GetAnimal(_ context.Context, animalID string) (*domain.Animal, error) {
	if animal, ok := a[animalID]; ok {
		return animal, nil
	}
	return nil, animals.ErrAnimalNotFound
}

// DefaultAnimals животные client-1 и client-2
func DefaultAnimals() Animals {
	return Animals{
		"rex": {ID: "rex", OwnerID: "client-1", Name: "Rex"},
		"tom": {ID: "tom", OwnerID: "client-2", Name: "Tom"},
	}
}

// TxManager выполняет функцию без транзакции; Err подменяет результат
type TxManager struct {
	Calls int
	Err   error
}

func (t *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return t.Err
}

// Notifier запоминает доставленные события; Err возвращается из Notify и Deliver,
// PrepareErr из Prepare
type Notifier struct {
	Events     []notifications.Event
	Prepared   []notifications.Event
	Err        error
	PrepareErr error
}

func (n *Notifier) Notify(_ context.Context, ev notifications.Event) error {
	n.Events = append(n.Events, ev)
	return n.Err
}

func (n *Notifier) Prepare(_ context.Context, ev notifications.Event) (*domain.Notification, error) {
	if n.PrepareErr != nil {
		return nil, n.PrepareErr
	}
	n.Prepared = append(n.Prepared, ev)
	return &domain.Notification{
		ReservationID: ev.Reservation.ID,
		Event:         ev.Kind,
		RecipientID:   ev.Reservation.ClientID,
	}, nil
}

func (n *Notifier) Deliver(_ context.Context, notification *domain.Notification) error {
	if notification == nil {
		return nil
	}
	for _, ev := range n.Prepared {
		if ev.Kind == notification.Event && ev.Reservation.ID == notification.ReservationID {
			n.Events = append(n.Events, ev)
			break
		}
	}
	return n.Err
}

// Kinds возвращает типы отправленных событий по порядку
func (n *Notifier) Kinds() []domain.NotificationEvent {
	kinds := make([]domain.NotificationEvent, len(n.Events))
	for i, ev := range n.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Recorder запоминает записи бронирований
type Recorder struct {
	Observed []string
}

func (r *Recorder) ObserveReservation(operation, status string) {
	r.Observed = append(r.Observed, operation+":"+status)
}

// NewReservation собирает бронирование на Monday
func NewReservation(id, clientID string, employeeID *string, start, end string, status domain.ReservationStatus) *domain.Reservation {
	res := &domain.Reservation{
		ID:         id,
		AnimalID:   "rex",
		ClientID:   clientID,
		EmployeeID: employeeID,
		Date:       Monday,
		TimeStart:  types.TimeString(start),
		TimeEnd:    types.TimeString(end),
		Status:     status,
	}
	res.Normalize()
	return res
}
