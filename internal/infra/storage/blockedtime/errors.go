package blockedtime

import "errors"

var (
	// ErrBlockedTimeNotFound возвращается, когда блокировка не найдена
	ErrBlockedTimeNotFound = errors.New("blockedtime.repository: blocked time not found")

	// ErrDuplicateBlockedTime возвращается при нарушении уникальности (date, time_start, time_end)
	ErrDuplicateBlockedTime = errors.New("blockedtime.repository: blocked time already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedtime.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedtime.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedtime.repository: failed to scan row")
)
