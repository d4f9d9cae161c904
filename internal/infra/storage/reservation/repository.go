package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

const table = "reservations"

var columns = []string{
	"id",
	"animal_id",
	"client_id",
	"employee_id",
	"date",
	"time_start",
	"time_end",
	"start_at",
	"end_at",
	"reason",
	"status",
	"reschedule_note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db      DBExecutor
	dialect psqlbuilder.Dialect
	now     func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db:      db,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create сохраняет новое бронирование.
// ID генерируется, если не задан; start/end пересчитываются из date и time_start/time_end.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}
	reservation.Normalize()
	now := r.now()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	query, args, err := r.dialect.Insert(table).
		Columns(columns...).
		Values(
			reservation.ID,
			reservation.AnimalID,
			reservation.ClientID,
			reservation.EmployeeID,
			types.NewDate(reservation.Date),
			reservation.TimeStart,
			reservation.TimeEnd,
			reservation.Start,
			reservation.End,
			reservation.Reason,
			string(reservation.Status),
			reservation.RescheduleNote,
			reservation.CreatedAt,
			reservation.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return reservation, nil
}

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	reservation.Normalize()
	reservation.UpdatedAt = r.now()

	query, args, err := r.dialect.Update(table).
		Set("employee_id", reservation.EmployeeID).
		Set("date", types.NewDate(reservation.Date)).
		Set("time_start", reservation.TimeStart).
		Set("time_end", reservation.TimeEnd).
		Set("start_at", reservation.Start).
		Set("end_at", reservation.End).
		Set("status", string(reservation.Status)).
		Set("reschedule_note", reservation.RescheduleNote).
		Set("updated_at", reservation.UpdatedAt).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, ErrReservationNotFound
	}

	return reservation, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), если БД это поддерживает.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.dialect.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) && r.dialect.SupportsRowLocks() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// ListAll возвращает все бронирования, отсортированные по дате и времени начала
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	selectBuilder := r.dialect.Select(columns...).
		From(table).
		OrderBy("date ASC", "time_start ASC")

	return r.list(ctx, "ListAll", selectBuilder)
}

// ListByClient возвращает бронирования клиента, сначала самые поздние даты
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error) {
	selectBuilder := r.dialect.Select(columns...).
		From(table).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("date DESC", "time_start ASC")

	return r.list(ctx, "ListByClient", selectBuilder)
}

// ListByEmployee возвращает бронирования сотрудника по дате и времени начала
func (r *Repository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Reservation, error) {
	selectBuilder := r.dialect.Select(columns...).
		From(table).
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("date ASC", "time_start ASC")

	return r.list(ctx, "ListByEmployee", selectBuilder)
}

// ListByEmployeeAndDate возвращает бронирования сотрудника на дату с указанными статусами.
// excludeID исключает одно бронирование (то, которое переносится).
// Внутри транзакции строки блокируются (FOR UPDATE), если БД это поддерживает.
func (r *Repository) ListByEmployeeAndDate(
	ctx context.Context,
	employeeID string,
	date time.Time,
	statuses []domain.ReservationStatus,
	excludeID *string,
) ([]*domain.Reservation, error) {
	selectBuilder := r.dialect.Select(columns...).
		From(table).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"date": types.NewDate(date)})

	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})
	}

	if excludeID != nil && *excludeID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	selectBuilder = selectBuilder.OrderBy("time_start ASC")

	if dbmetrics.IsInTransaction(ctx) && r.dialect.SupportsRowLocks() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListByEmployeeAndDate", selectBuilder)
}

// LockEmployeeDay берет advisory lock на пару (сотрудник, дата) до конца текущей транзакции.
// FOR UPDATE не защищает от вставки новой строки, поэтому проверку конфликта и запись
// сериализуем через блокировку. На SQLite ничего не делает: там одно соединение.
func (r *Repository) LockEmployeeDay(ctx context.Context, employeeID string, date time.Time) error {
	if !r.dialect.SupportsRowLocks() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	key := fmt.Sprintf("reservation:%s:%s", employeeID, types.NewDate(date))

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockEmployeeDay - acquire lock: %w", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation    domain.Reservation
		employeeID     sql.NullString
		date           types.Date
		reason         sql.NullString
		status         string
		rescheduleNote sql.NullString
		start, end     sql.NullTime
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.AnimalID,
		&reservation.ClientID,
		&employeeID,
		&date,
		&reservation.TimeStart,
		&reservation.TimeEnd,
		&start,
		&end,
		&reason,
		&status,
		&rescheduleNote,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.EmployeeID = nullString(employeeID)
	reservation.Date = date.Time
	reservation.Start = start.Time.UTC()
	reservation.End = end.Time.UTC()
	reservation.Reason = nullString(reason)
	reservation.Status = domain.ReservationStatus(status)
	reservation.RescheduleNote = nullString(rescheduleNote)
	reservation.CreatedAt = createdAt.Time.UTC()
	reservation.UpdatedAt = updatedAt.Time.UTC()

	return &reservation, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
