package confirm_rescheduled

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

const operation = "confirm_rescheduled"

// UseCase use case для решения по перенесенному бронированию
type UseCase struct {
	reservationRepo ReservationRepository
	checker         Checker
	notifier        Notifier
	txManager       TransactionManager
	recorder        Recorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker Checker,
	notifier Notifier,
	txManager TransactionManager,
	recorder Recorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		notifier:        notifier,
		txManager:       txManager,
		recorder:        recorder,
		logger:          logger,
	}
}

// Execute подтверждает или отменяет бронирование в статусе RESCHEDULED.
// При подтверждении уведомление уходит в той же транзакции до записи:
// ошибка отправки в режиме propagate откатывает изменение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmRescheduled: id=%s, status=%s", req.ReservationID, req.Status)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfirmRescheduled: validation failed: %v", err)
		return nil, err
	}

	// 2. Уведомление о подтверждении собирается до транзакции:
	// получатель загружается из сервиса пользователей
	var (
		current   *domain.Reservation
		confirmed *domain.Notification
	)
	if status == domain.StatusConfirmed {
		current, err = uc.getRescheduled(ctx, req.ReservationID, status)
		if err != nil {
			uc.logger.Warn("ConfirmRescheduled: id=%s rejected: %v", req.ReservationID, err)
			return nil, err
		}

		confirmed, err = uc.notifier.Prepare(ctx, notifications.Event{
			Kind:        domain.EventConfirmed,
			Reservation: current,
			Note:        req.ConfirmationNote,
		})
		if err != nil {
			uc.logger.Warn("ConfirmRescheduled: id=%s notification not prepared: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: %w", ErrConfirmationNotSent, err)
		}
	}

	var updated *domain.Reservation

	// 3. Проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.getRescheduled(txCtx, req.ReservationID, status)
		if err != nil {
			return err
		}

		if status == domain.StatusConfirmed {
			if !sameSchedule(reservation, current) {
				return fmt.Errorf("%w: reservation %s changed before confirmation", scheduling.ErrConcurrentModification, reservation.ID)
			}

			if err := uc.checker.EnsureEmployeeFree(txCtx, *reservation.EmployeeID, reservation.Date, reservation.Window(), &reservation.ID); err != nil {
				return err
			}

			if err := uc.notifier.Deliver(txCtx, confirmed); err != nil {
				return fmt.Errorf("%w: %w", ErrConfirmationNotSent, err)
			}
		}

		reservation.Status = status
		reservation.RescheduleNote = req.ConfirmationNote

		saved, err := uc.reservationRepo.Update(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
		}

		updated = saved
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("ConfirmRescheduled: concurrent modification: %v", err)
			return nil, fmt.Errorf("%w: %v", scheduling.ErrConcurrentModification, err)
		}
		uc.logger.Warn("ConfirmRescheduled: id=%s failed: %v", req.ReservationID, err)
		return nil, err
	}

	uc.recorder.ObserveReservation(operation, string(updated.Status))
	uc.logger.Info("ConfirmRescheduled: reservation id=%s now %s", updated.ID, updated.Status)

	// 4. Отмена уведомляется после записи
	if updated.Status == domain.StatusCancelled {
		if err := uc.notifier.Notify(ctx, notifications.Event{
			Kind:        domain.EventCancelled,
			Reservation: updated,
			Note:        req.ConfirmationNote,
		}); err != nil {
			uc.logger.Error("ConfirmRescheduled: reservation id=%s saved, notification failed: %v", updated.ID, err)
			return nil, err
		}
	}

	return models.FromDomainReservation(updated), nil
}

// getRescheduled загружает бронирование и проверяет, что его можно перевести в status
func (uc *UseCase) getRescheduled(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
	}

	if reservation.Status != domain.StatusRescheduled || !reservation.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: current status %s", ErrNotRescheduled, reservation.Status)
	}

	if status == domain.StatusConfirmed && !reservation.HasEmployee() {
		return nil, ErrEmployeeRequired
	}

	return reservation, nil
}

func sameSchedule(a, b *domain.Reservation) bool {
	return a.ClientID == b.ClientID &&
		a.Date.Equal(b.Date) &&
		a.TimeStart == b.TimeStart &&
		a.TimeEnd == b.TimeEnd &&
		*a.EmployeeID == *b.EmployeeID
}
