package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// UseCase use case для получения свободных слотов сотрудника на дату
type UseCase struct {
	reservationRepo ReservationRepository
	policy          domain.SchedulingPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, policy domain.SchedulingPolicy, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Чтение не блокирует пишущие транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: employee=%s, date=%s", req.EmployeeID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Активные бронирования сотрудника на дату
	reservations, err := uc.reservationRepo.ListByEmployeeAndDate(ctx, req.EmployeeID, date, domain.ActiveStatuses, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Генерируем слоты и убираем занятые
	slots := freeSlots(uc.policy.Hours, uc.policy.SlotGranularityMinutes, reservations)

	uc.logger.Info("GetAvailableSlots: %d free slots for employee=%s on %s (%d reservations)",
		len(slots), req.EmployeeID, domain.FormatDate(date), len(reservations))

	return &Response{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Slots:      slots,
	}, nil
}
