package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/animals"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
)

// Resolver определяет участников бронирования по ролям пользователей
type Resolver struct {
	identity IdentityClient
	animals  AnimalClient
	logger   Logger
}

// NewResolver создает резолвер участников бронирования
func NewResolver(identityClient IdentityClient, animalClient AnimalClient, logger Logger) *Resolver {
	return &Resolver{
		identity: identityClient,
		animals:  animalClient,
		logger:   logger,
	}
}

// ResolveRequester загружает инициатора запроса
func (r *Resolver) ResolveRequester(ctx context.Context, requesterID string) (*domain.User, error) {
	user, err := r.identity.GetUser(ctx, requesterID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrRequesterNotFound, requesterID)
		}
		return nil, fmt.Errorf("%w: ResolveRequester - get user: %v", ErrInternal, err)
	}
	return user, nil
}

// ResolveClient возвращает клиента бронирования.
// Сотрудник или администратор может указать клиента явно, тогда тот обязан иметь роль CLIENT.
// В остальных случаях клиент - сам инициатор.
func (r *Resolver) ResolveClient(ctx context.Context, requester *domain.User, explicitClientID *string) (*domain.User, error) {
	if !requester.IsStaffOrAdmin() || explicitClientID == nil || *explicitClientID == "" {
		return requester, nil
	}

	client, err := r.identity.GetUser(ctx, *explicitClientID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrClientNotFound, *explicitClientID)
		}
		return nil, fmt.Errorf("%w: ResolveClient - get user: %v", ErrInternal, err)
	}

	if client.Role != domain.RoleClient {
		r.logger.Warn("ResolveClient: user=%s has role %s, expected client", client.ID, client.Role)
		return nil, fmt.Errorf("%w: id=%s", ErrInvalidClient, client.ID)
	}

	return client, nil
}

// ValidateAnimalOwnership проверяет, что животное существует и принадлежит клиенту
func (r *Resolver) ValidateAnimalOwnership(ctx context.Context, animalID string, client *domain.User) (*domain.Animal, error) {
	animal, err := r.animals.GetAnimal(ctx, animalID)
	if err != nil {
		if errors.Is(err, animals.ErrAnimalNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrAnimalNotFound, animalID)
		}
		return nil, fmt.Errorf("%w: ValidateAnimalOwnership - get animal: %v", ErrInternal, err)
	}

	if !animal.BelongsTo(client.ID) {
		r.logger.Warn("ValidateAnimalOwnership: animal=%s belongs to %s, not to client=%s", animal.ID, animal.OwnerID, client.ID)
		return nil, fmt.Errorf("%w: animal=%s client=%s", ErrAnimalNotOwned, animal.ID, client.ID)
	}

	return animal, nil
}

// ResolveEmployee определяет назначаемого сотрудника.
// Явно указанный сотрудник должен иметь роль STAFF; иначе сотрудником становится
// инициатор с ролью STAFF/ADMIN; иначе сотрудник не назначается (nil).
func (r *Resolver) ResolveEmployee(ctx context.Context, requester *domain.User, explicitEmployeeID *string) (*domain.User, error) {
	if explicitEmployeeID != nil && *explicitEmployeeID != "" {
		return r.ValidateEmployee(ctx, *explicitEmployeeID, domain.RoleStaff)
	}

	if requester.IsStaffOrAdmin() {
		return requester, nil
	}

	return nil, nil
}

// ValidateEmployee загружает пользователя и проверяет, что его роль входит в roles
func (r *Resolver) ValidateEmployee(ctx context.Context, employeeID string, roles ...domain.Role) (*domain.User, error) {
	employee, err := r.identity.GetUser(ctx, employeeID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrEmployeeNotFound, employeeID)
		}
		return nil, fmt.Errorf("%w: ValidateEmployee - get user: %v", ErrInternal, err)
	}

	if !employee.HasRole(roles...) {
		r.logger.Warn("ValidateEmployee: user=%s has role %s, expected one of %v", employee.ID, employee.Role, roles)
		return nil, fmt.Errorf("%w: id=%s role=%s", ErrInvalidEmployee, employee.ID, employee.Role)
	}

	return employee, nil
}

// InitialStatus возвращает статус нового бронирования:
// CONFIRMED, если его создает сотрудник или администратор, иначе PENDING
func InitialStatus(requester *domain.User) domain.ReservationStatus {
	if requester.IsStaffOrAdmin() {
		return domain.StatusConfirmed
	}
	return domain.StatusPending
}
