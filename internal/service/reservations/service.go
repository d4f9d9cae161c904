package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
)

// Service сервис чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	identityClient  IdentityClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		identityClient:  identityClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// ListAll возвращает все бронирования по дате и времени начала (по возрастанию)
func (s *Service) ListAll(ctx context.Context) (*models.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// ListByClient возвращает бронирования клиента, самые поздние даты первыми
func (s *Service) ListByClient(ctx context.Context, clientID string) (*models.ReservationListResponse, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d reservations for client=%s", len(reservations), clientID)
	return models.FromDomainReservationList(reservations), nil
}

// ListByEmployee возвращает бронирования сотрудника.
// Сотрудник должен существовать и иметь роль STAFF
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) (*models.ReservationListResponse, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee id is required", ErrInvalidInput)
	}

	employee, err := s.identityClient.GetUser(ctx, employeeID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			s.logger.Warn("ListByEmployee: employee id=%s not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("ListByEmployee: failed to get employee id=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: ListByEmployee - get employee: %v", ErrInternal, err)
	}
	if employee.Role != domain.RoleStaff {
		s.logger.Warn("ListByEmployee: user id=%s has role %s, not staff", employeeID, employee.Role)
		return nil, ErrEmployeeNotFound
	}

	reservations, err := s.reservationRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("ListByEmployee: repository error for employee=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: ListByEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEmployee: fetched %d reservations for employee=%s", len(reservations), employeeID)
	return models.FromDomainReservationList(reservations), nil
}
