package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapError translates driver errors into apperrors kinds. fkErr is returned
// for foreign key violations, since only the caller knows which reference failed.
func mapError(err error, fkErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			if fkErr != nil {
				return fmt.Errorf("%w: %v", fkErr, err)
			}
		}
	}
	return err
}
