package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateKey is returned when an insert hits a unique constraint. The
// unique indexes are the race-safety backstop for read-then-write checks
// (duplicate registration, double like), so callers translate this into their
// own domain error instead of treating it as a storage fault.
// ErrDuplicateEmail is the same condition narrowed to the users email index,
// so a lost registration race still reports the right field. It wraps
// ErrDuplicateKey, so generic duplicate checks keep matching.
var (
	ErrDuplicateKey   = errors.New("duplicate key value")
	ErrDuplicateEmail = fmt.Errorf("%w on email", ErrDuplicateKey)
)

func isUniqueViolation(err error) bool {
	_, ok := uniqueConstraint(err)
	return ok
}

// uniqueConstraint reports the violated constraint's name for a postgres
// unique violation.
func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
