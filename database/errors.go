package database

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// classify maps a failed store call onto a StoreError or ValidationError.
// The SQLSTATE is used when the driver exposes one; otherwise the message is
// matched the way Postgres words it.
func classify(operation, entity string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errs.NewStoreUnavailableError(operation, entity, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := pgErr.Code
		switch {
		case code == "42501":
			return errs.NewStorePermissionError(operation, entity, err)
		case strings.HasPrefix(code, "42"):
			return errs.NewSchemaMismatchError(operation, entity, err)
		case strings.HasPrefix(code, "22"), strings.HasPrefix(code, "23"):
			return errs.NewValidationError(entity, pgErr.Message, err)
		case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P"), strings.HasPrefix(code, "53"):
			return errs.NewStoreUnavailableError(operation, entity, err)
		}
		return errs.NewStoreError(operation, entity, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "violates not-null constraint"),
		strings.Contains(msg, "violates check constraint"),
		strings.Contains(msg, "invalid input syntax"):
		return errs.NewValidationError(entity, err.Error(), err)
	case strings.Contains(msg, "permission denied"):
		return errs.NewStorePermissionError(operation, entity, err)
	case strings.Contains(msg, "does not exist"):
		return errs.NewSchemaMismatchError(operation, entity, err)
	case strings.Contains(msg, "connection"), strings.Contains(msg, "dial"):
		return errs.NewStoreUnavailableError(operation, entity, err)
	}
	return errs.NewStoreError(operation, entity, err)
}
