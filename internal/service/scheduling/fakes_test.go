package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/animals"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservations struct {
	items   []*domain.Reservation
	locks   []string
	listErr error
}

func (f *fakeReservations) ListByEmployeeAndDate(
	_ context.Context,
	employeeID string,
	date time.Time,
	statuses []domain.ReservationStatus,
	excludeID *string,
) ([]*domain.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []*domain.Reservation
	for _, r := range f.items {
		if r.EmployeeID == nil || *r.EmployeeID != employeeID {
			continue
		}
		if !r.Date.Equal(domain.NormalizeDate(date)) {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		for _, s := range statuses {
			if r.Status == s {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReservations) LockEmployeeDay(_ context.Context, employeeID string, date time.Time) error {
	f.locks = append(f.locks, employeeID+"@"+domain.FormatDate(date))
	return nil
}

type fakeBlocked struct {
	items []*domain.BlockedTime
}

func (f *fakeBlocked) ListByDate(_ context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	var out []*domain.BlockedTime
	for _, b := range f.items {
		if b.Date.Equal(domain.NormalizeDate(date)) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeIdentity struct {
	users map[string]*domain.User
}

func (f *fakeIdentity) GetUser(_ context.Context, userID string) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

type fakeAnimals struct {
	items map[string]*domain.Animal
}

func (f *fakeAnimals) GetAnimal(_ context.Context, animalID string) (*domain.Animal, error) {
	a, ok := f.items[animalID]
	if !ok {
		return nil, animals.ErrAnimalNotFound
	}
	return a, nil
}

var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func reservationAt(id, employeeID, start, end string, status domain.ReservationStatus) *domain.Reservation {
	r := &domain.Reservation{
		ID:         id,
		AnimalID:   "animal-1",
		ClientID:   "client-1",
		EmployeeID: &employeeID,
		Date:       monday,
		TimeStart:  types.TimeString(start),
		TimeEnd:    types.TimeString(end),
		Status:     status,
	}
	r.Normalize()
	return r
}

func mustWindow(start, end string) domain.TimeWindow {
	w, err := domain.NewTimeWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}
