package pgsql

import (
	"errors"
	"fmt"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError translates pgx errors into apperrors kinds. fkErr is returned for
// foreign key violations.
func mapError(err error, fkErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName)
		case foreignKeyViolation:
			if fkErr != nil {
				return fmt.Errorf("%w: %s", fkErr, pgErr.ConstraintName)
			}
		}
	}
	return err
}

// requireAffected turns a write that touched no row into ErrNotFound.
func requireAffected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
