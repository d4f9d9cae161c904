package psqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

// Dialect squirrel builder с плейсхолдерами под конкретный драйвер
type Dialect struct {
	driver      string
	placeholder squirrel.PlaceholderFormat
	rowLocks    bool
}

var (
	// Postgres $1, $2 ... и поддержка FOR UPDATE
	Postgres = Dialect{driver: "postgres", placeholder: squirrel.Dollar, rowLocks: true}

	// SQLite ? плейсхолдеры, без блокировок строк
	SQLite = Dialect{driver: "sqlite3", placeholder: squirrel.Question, rowLocks: false}
)

// ForDriver возвращает диалект по имени database/sql драйвера.
// Неизвестный драйвер считается PostgreSQL.
func ForDriver(driver string) Dialect {
	if driver == SQLite.driver {
		return SQLite
	}
	return Postgres
}

// Driver имя драйвера
func (d Dialect) Driver() string {
	return d.driver
}

// SupportsRowLocks поддерживает ли БД SELECT ... FOR UPDATE и advisory locks
func (d Dialect) SupportsRowLocks() bool {
	return d.rowLocks
}

func (d Dialect) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.placeholder)
}

func (d Dialect) Select(columns ...string) squirrel.SelectBuilder {
	return d.builder().Select(columns...)
}

func (d Dialect) Insert(into string) squirrel.InsertBuilder {
	return d.builder().Insert(into)
}

func (d Dialect) Update(table string) squirrel.UpdateBuilder {
	return d.builder().Update(table)
}

func (d Dialect) Delete(from string) squirrel.DeleteBuilder {
	return d.builder().Delete(from)
}
