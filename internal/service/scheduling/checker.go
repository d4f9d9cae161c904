package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// Checker проверяет, можно ли занять интервал: рабочее время, блокировки и занятость сотрудника
type Checker struct {
	reservations ReservationRepository
	blocked      BlockedTimeRepository
	policy       domain.SchedulingPolicy
	logger       Logger
}

// NewChecker создает проверку допустимости интервалов
func NewChecker(
	reservations ReservationRepository,
	blocked BlockedTimeRepository,
	policy domain.SchedulingPolicy,
	logger Logger,
) *Checker {
	return &Checker{
		reservations: reservations,
		blocked:      blocked,
		policy:       policy,
		logger:       logger,
	}
}

// Policy возвращает политику, с которой создана проверка
func (c *Checker) Policy() domain.SchedulingPolicy {
	return c.policy
}

// ValidateWindow проверяет формат интервала, порядок границ и рабочее время клиники
func (c *Checker) ValidateWindow(date time.Time, window domain.TimeWindow) error {
	if err := window.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			return ErrInvalidWindow
		}
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	ok, err := c.policy.Hours.Contains(date, window)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %s, open %s", ErrOutsideBusinessHours,
			domain.FormatDate(date), window, c.policy.Hours.Window())
	}

	return nil
}

// IsTimeBlocked сообщает, перекрывает ли запрошенный интервал одну из блокировок даты.
// Блокировка срабатывает, только если лежит внутри запрошенного интервала (см. domain.BlockedTime.Blocks).
func (c *Checker) IsTimeBlocked(ctx context.Context, date time.Time, window domain.TimeWindow) (bool, error) {
	blocked, err := c.blocked.ListByDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("%w: IsTimeBlocked - list blocked times: %w", ErrInternal, err)
	}

	for _, b := range blocked {
		if b.Blocks(window) {
			return true, nil
		}
	}

	return false, nil
}

// IsEmployeeReserved сообщает, есть ли у сотрудника активное бронирование,
// пересекающееся с интервалом, расширенным на буфер с обеих сторон.
// excludeID убирает из проверки переносимое бронирование.
func (c *Checker) IsEmployeeReserved(
	ctx context.Context,
	employeeID string,
	date time.Time,
	window domain.TimeWindow,
	excludeID *string,
) (bool, error) {
	existing, err := c.reservations.ListByEmployeeAndDate(ctx, employeeID, date, domain.ActiveStatuses, excludeID)
	if err != nil {
		return false, fmt.Errorf("%w: IsEmployeeReserved - list reservations: %w", ErrInternal, err)
	}

	buffered := window.Widen(c.policy.ConflictBufferMinutes)
	for _, r := range existing {
		if r.Window().Overlaps(buffered) {
			c.logger.Info("IsEmployeeReserved: employee=%s date=%s window=%s conflicts with reservation=%s (%s)",
				employeeID, domain.FormatDate(date), window, r.ID, r.Window())
			return true, nil
		}
	}

	return false, nil
}

// CheckFeasibility выполняет проверки, не зависящие от сотрудника:
// корректность интервала, рабочее время и заблокированное время
func (c *Checker) CheckFeasibility(ctx context.Context, date time.Time, window domain.TimeWindow) error {
	if err := c.ValidateWindow(date, window); err != nil {
		return err
	}

	blocked, err := c.IsTimeBlocked(ctx, date, window)
	if err != nil {
		return err
	}
	if blocked {
		return fmt.Errorf("%w: %s %s", ErrTimeBlocked, domain.FormatDate(date), window)
	}

	return nil
}

// EnsureEmployeeFree берет блокировку на день сотрудника и проверяет конфликт.
// Вызывается внутри транзакции, чтобы проверка и запись были атомарны.
func (c *Checker) EnsureEmployeeFree(
	ctx context.Context,
	employeeID string,
	date time.Time,
	window domain.TimeWindow,
	excludeID *string,
) error {
	if err := c.reservations.LockEmployeeDay(ctx, employeeID, date); err != nil {
		return fmt.Errorf("%w: EnsureEmployeeFree - lock employee day: %w", ErrInternal, err)
	}

	reserved, err := c.IsEmployeeReserved(ctx, employeeID, date, window, excludeID)
	if err != nil {
		return err
	}
	if reserved {
		return fmt.Errorf("%w: employee=%s %s %s", ErrEmployeeConflict, employeeID, domain.FormatDate(date), window)
	}

	return nil
}
