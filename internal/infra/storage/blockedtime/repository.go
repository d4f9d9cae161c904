package blockedtime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

const (
	table = "blocked_times"

	pqUniqueViolation = "23505"
)

var columns = []string{
	"id",
	"date",
	"time_start",
	"time_end",
	"start_at",
	"end_at",
	"reason",
	"created_at",
}

// Repository репозиторий блокировок времени
type Repository struct {
	db      DBExecutor
	dialect psqlbuilder.Dialect
	now     func() time.Time
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db:      db,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create сохраняет блокировку.
// Повтор (date, time_start, time_end) возвращает ErrDuplicateBlockedTime.
func (r *Repository) Create(ctx context.Context, blocked *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if blocked.ID == "" {
		blocked.ID = uuid.NewString()
	}
	blocked.Normalize()
	blocked.CreatedAt = r.now()

	query, args, err := r.dialect.Insert(table).
		Columns(columns...).
		Values(
			blocked.ID,
			types.NewDate(blocked.Date),
			blocked.TimeStart,
			blocked.TimeEnd,
			blocked.Start,
			blocked.End,
			blocked.Reason,
			blocked.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBlockedTime
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return blocked, nil
}

// ListByDate возвращает блокировки на дату, по возрастанию времени начала
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.dialect.Select(columns...).
		From(table).
		Where(squirrel.Eq{"date": types.NewDate(date)}).
		OrderBy("time_start ASC", "time_end ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		blocked, err := scanBlockedTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan blocked time: %v", ErrScanRow, err)
		}
		result = append(result, blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// FindExact ищет блокировку с точно такими же датой и окном
func (r *Repository) FindExact(ctx context.Context, date time.Time, window domain.TimeWindow) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.dialect.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"date":       types.NewDate(date),
			"time_start": window.Start,
			"time_end":   window.End,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindExact - build select query: %v", ErrBuildQuery, err)
	}

	blocked, err := scanBlockedTime(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindExact - scan blocked time: %v", ErrScanRow, err)
	}

	return blocked, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedTime(row rowScanner) (*domain.BlockedTime, error) {
	var (
		blocked    domain.BlockedTime
		date       types.Date
		start, end sql.NullTime
		reason     sql.NullString
		createdAt  sql.NullTime
	)

	err := row.Scan(
		&blocked.ID,
		&date,
		&blocked.TimeStart,
		&blocked.TimeEnd,
		&start,
		&end,
		&reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	blocked.Date = date.Time
	blocked.Start = start.Time.UTC()
	blocked.End = end.Time.UTC()
	if reason.Valid {
		blocked.Reason = &reason.String
	}
	blocked.CreatedAt = createdAt.Time.UTC()

	return &blocked, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
