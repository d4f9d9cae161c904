package confirm_pending

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/txmanager"
)

const operation = "confirm_pending"

// UseCase use case для подтверждения ожидающего бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	checker         Checker
	resolver        Resolver
	notifier        Notifier
	txManager       TransactionManager
	recorder        Recorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker Checker,
	resolver Resolver,
	notifier Notifier,
	txManager TransactionManager,
	recorder Recorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		resolver:        resolver,
		notifier:        notifier,
		txManager:       txManager,
		recorder:        recorder,
		logger:          logger,
	}
}

// Execute переводит бронирование из PENDING в CONFIRMED и назначает сотрудника.
// Повторное подтверждение отклоняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPending: id=%s, employee=%s", req.ReservationID, req.EmployeeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPending: validation failed: %v", err)
		return nil, err
	}

	// 2. Сотрудник: STAFF или ADMIN
	employee, err := uc.resolver.ValidateEmployee(ctx, req.EmployeeID, domain.RoleStaff, domain.RoleAdmin)
	if err != nil {
		uc.logger.Warn("ConfirmPending: employee check failed: %v", err)
		return nil, err
	}

	var confirmed *domain.Reservation

	// 3. Проверка статуса, конфликта и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		if reservation.Status != domain.StatusPending {
			return fmt.Errorf("%w: current status %s", ErrNotPending, reservation.Status)
		}

		if err := uc.checker.EnsureEmployeeFree(txCtx, employee.ID, reservation.Date, reservation.Window(), &reservation.ID); err != nil {
			return err
		}

		reservation.EmployeeID = &employee.ID
		reservation.Status = domain.StatusConfirmed
		reservation.RescheduleNote = req.ConfirmationNote

		saved, err := uc.reservationRepo.Update(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
		}

		confirmed = saved
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ConfirmPending: concurrent modification: %v", err)
			return nil, fmt.Errorf("%w: %v", scheduling.ErrConcurrentModification, err)
		}
		uc.logger.Warn("ConfirmPending: id=%s failed: %v", req.ReservationID, err)
		return nil, err
	}

	uc.recorder.ObserveReservation(operation, string(confirmed.Status))
	uc.logger.Info("ConfirmPending: reservation id=%s confirmed, employee=%s", confirmed.ID, employee.ID)

	// 4. Уведомление клиенту
	if err := uc.notifier.Notify(ctx, notifications.Event{
		Kind:        domain.EventConfirmed,
		Reservation: confirmed,
		Note:        req.ConfirmationNote,
	}); err != nil {
		uc.logger.Error("ConfirmPending: reservation id=%s saved, notification failed: %v", confirmed.ID, err)
		return nil, err
	}

	return models.FromDomainReservation(confirmed), nil
}
