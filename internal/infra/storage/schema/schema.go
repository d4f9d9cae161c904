package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
)

//go:embed schema.sql
var ddl string

// Apply создает таблицы и индексы, если их ещё нет.
// Схема совместима с PostgreSQL и SQLite.
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, stmt := range Statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: apply %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// Statements возвращает DDL, разбитый на отдельные выражения
func Statements() []string {
	parts := strings.Split(ddl, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return strings.TrimSpace(line)
}
