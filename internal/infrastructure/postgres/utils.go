package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto común de *pgxpool.Pool y pgx.Tx que usan los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// validID evita enviar a PostgreSQL ids que no son UUID (fallarían con 22P02).
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// nullable convierte "" en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// limitArg convierte limit <= 0 en NULL (LIMIT NULL = sin límite).
func limitArg(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
