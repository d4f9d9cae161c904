package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/txmanager"
)

const operation = "create"

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка конфликта сотрудника и запись выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: requester=%s, animal=%s, date=%s, time=%s-%s",
		req.RequesterID, req.AnimalID, req.Date, req.TimeStart, req.TimeEnd)

	// 1. Валидация входных данных
	date, window, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Интервал: порядок границ, рабочее время, заблокированное время.
	// Проверяется до обращения к сервису пользователей
	if err := uc.checker.CheckFeasibility(ctx, date, window); err != nil {
		uc.logger.Warn("CreateReservation: window %s %s rejected: %v", domain.FormatDate(date), window, err)
		return nil, err
	}

	// 3. Загружаем инициатора
	requester, err := uc.resolver.ResolveRequester(ctx, req.RequesterID)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to resolve requester=%s: %v", req.RequesterID, err)
		return nil, err
	}

	// 4. Клиент и владение животным
	client, err := uc.resolver.ResolveClient(ctx, requester, req.ClientID)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to resolve client: %v", err)
		return nil, err
	}

	if _, err := uc.resolver.ValidateAnimalOwnership(ctx, req.AnimalID, client); err != nil {
		uc.logger.Warn("CreateReservation: animal check failed: %v", err)
		return nil, err
	}

	// 5. Назначаемый сотрудник (может отсутствовать)
	employee, err := uc.resolver.ResolveEmployee(ctx, requester, req.EmployeeID)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to resolve employee: %v", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		AnimalID:  req.AnimalID,
		ClientID:  client.ID,
		Date:      date,
		TimeStart: window.Start,
		TimeEnd:   window.End,
		Reason:    req.Reason,
		Status:    scheduling.InitialStatus(requester),
	}
	if employee != nil {
		reservation.EmployeeID = &employee.ID
	}
	reservation.Normalize()

	var created *domain.Reservation

	// 6. Проверка конфликта и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if reservation.HasEmployee() {
			if err := uc.checker.EnsureEmployeeFree(txCtx, *reservation.EmployeeID, date, window, nil); err != nil {
				return err
			}
		}

		saved, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to save reservation: %v", err)
			return fmt.Errorf("%w: failed to save reservation: %w", ErrInternal, err)
		}

		created = saved
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateReservation: concurrent modification: %v", err)
			return nil, fmt.Errorf("%w: %v", scheduling.ErrConcurrentModification, err)
		}
		uc.logger.Warn("CreateReservation: transaction failed: %v", err)
		return nil, err
	}

	uc.recorder.ObserveReservation(operation, string(created.Status))
	uc.logger.Info("CreateReservation: successfully created reservation id=%s, status=%s", created.ID, created.Status)

	// 7. Уведомление клиенту
	if err := uc.notifier.Notify(ctx, notifications.Event{
		Kind:        domain.EventCreated,
		Reservation: created,
		Recipient:   client,
	}); err != nil {
		uc.logger.Error("CreateReservation: reservation id=%s saved, notification failed: %v", created.ID, err)
		return nil, err
	}

	return models.FromDomainReservation(created), nil
}
