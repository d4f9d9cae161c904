package update_reservation_status

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

const operation = "update_status"

// UseCase use case для изменения статуса и переноса бронирования
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

// Execute перезаписывает статус и комментарий бронирования.
// Если задана хотя бы одна из новых даты/времени, бронирование переносится
// с проверкой рабочего времени, блокировок и занятости сотрудника.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservationStatus: id=%s, status=%s", req.ReservationID, req.Status)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateReservationStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем переназначаемого сотрудника до транзакции
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if _, err := uc.resolver.ValidateEmployee(ctx, *req.EmployeeID, domain.RoleStaff); err != nil {
			uc.logger.Warn("UpdateReservationStatus: employee check failed: %v", err)
			return nil, err
		}
	}

	changes := scheduleChange{date: req.NewDate, start: req.NewTimeStart, end: req.NewTimeEnd}

	var (
		updated  *domain.Reservation
		previous notifications.Schedule
	)

	// 3. Загрузка, перенос и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		if req.EmployeeID != nil && *req.EmployeeID != "" {
			reservation.EmployeeID = req.EmployeeID
		}

		previous = notifications.Schedule{Date: reservation.Date, Window: reservation.Window()}

		if changes.requested() {
			if err := uc.reschedule(txCtx, reservation, changes); err != nil {
				return err
			}
		}

		reservation.Status = status
		reservation.RescheduleNote = req.RescheduleNote

		saved, err := uc.reservationRepo.Update(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
		}

		updated = saved
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("UpdateReservationStatus: concurrent modification: %v", err)
			return nil, fmt.Errorf("%w: %v", scheduling.ErrConcurrentModification, err)
		}
		uc.logger.Warn("UpdateReservationStatus: id=%s failed: %v", req.ReservationID, err)
		return nil, err
	}

	uc.recorder.ObserveReservation(operation, string(updated.Status))
	uc.logger.Info("UpdateReservationStatus: reservation id=%s now %s on %s %s",
		updated.ID, updated.Status, domain.FormatDate(updated.Date), updated.Window())

	// 4. Уведомление клиенту
	if err := uc.notify(ctx, updated, previous); err != nil {
		uc.logger.Error("UpdateReservationStatus: reservation id=%s saved, notification failed: %v", updated.ID, err)
		return nil, err
	}

	return models.FromDomainReservation(updated), nil
}

// reschedule проверяет новое окно и переносит бронирование.
// Конфликт проверяется для назначенного сотрудника без учета самого бронирования.
func (uc *UseCase) reschedule(ctx context.Context, reservation *domain.Reservation, changes scheduleChange) error {
	date, window, err := resolveSchedule(reservation, changes)
	if err != nil {
		return err
	}

	if err := uc.checker.CheckFeasibility(ctx, date, window); err != nil {
		return err
	}

	if reservation.HasEmployee() {
		if err := uc.checker.EnsureEmployeeFree(ctx, *reservation.EmployeeID, date, window, &reservation.ID); err != nil {
			return err
		}
	}

	uc.logger.Info("UpdateReservationStatus: moving reservation id=%s from %s %s to %s %s",
		reservation.ID, domain.FormatDate(reservation.Date), reservation.Window(), domain.FormatDate(date), window)

	reservation.Reschedule(date, window)
	return nil
}

func (uc *UseCase) notify(ctx context.Context, reservation *domain.Reservation, previous notifications.Schedule) error {
	switch reservation.Status {
	case domain.StatusRescheduled:
		return uc.notifier.Notify(ctx, notifications.Event{
			Kind:        domain.EventRescheduled,
			Reservation: reservation,
			Previous:    &previous,
			Note:        reservation.RescheduleNote,
		})
	case domain.StatusCancelled:
		return uc.notifier.Notify(ctx, notifications.Event{
			Kind:        domain.EventCancelled,
			Reservation: reservation,
			Note:        reservation.RescheduleNote,
		})
	default:
		return nil
	}
}
