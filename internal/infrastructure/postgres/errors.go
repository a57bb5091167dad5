package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

const uniqueViolation = "23505"

// mapErr translates driver errors into the repository sentinels. Unique
// constraint violations become ErrDuplicate so the check-then-insert race is
// closed at the storage layer.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}

// dateParam converts an optional YYYY-MM-DD string into a DATE parameter,
// sending NULL when empty.
func dateParam(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// dateString formats a nullable DATE column back into the YYYY-MM-DD form
// the API exposes.
func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
