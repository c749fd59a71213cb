package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/apperr"
)

// Op names the kind of persistence call being classified.
type Op string

const (
	OpFind   Op = "find"
	OpList   Op = "list"
	OpCount  Op = "count"
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// SQLite extended result codes.
const (
	sqliteConstraintForeignKey = 787
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// Classify maps a raw persistence error to an *apperr.Error. Already
// classified errors pass through unchanged; nil stays nil.
//
// Rules, first match wins:
//   - OpFind + gorm.ErrRecordNotFound -> NotFound
//   - unique violation                -> UniqueViolation
//   - foreign-key violation           -> FKViolation, or StateConflict on OpDelete
//   - anything else                   -> Unexpected (original message kept as detail)
func Classify(err error, op Op) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if op == OpFind && errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound()
	}
	switch {
	case isUniqueViolation(err):
		return apperr.UniqueViolation(err.Error())
	case isForeignKeyViolation(err):
		if op == OpDelete {
			return apperr.StateConflict(err.Error())
		}
		return apperr.FKViolation(err.Error())
	}
	return apperr.Unexpected(err.Error())
}

// Check classifies the outcome of a finished gorm statement. Updates and
// deletes that touched no row report Unaffected.
func Check(res *gorm.DB, op Op) error {
	if res.Error != nil {
		return Classify(res.Error, op)
	}
	if (op == OpUpdate || op == OpDelete) && res.RowsAffected == 0 {
		return apperr.Unaffected()
	}
	return nil
}

// sqliteCoder matches driver errors exposing an extended result code.
type sqliteCoder interface {
	Code() int
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var se sqliteCoder
	if errors.As(err, &se) {
		if c := se.Code(); c == sqliteConstraintUnique || c == sqliteConstraintPrimaryKey {
			return true
		}
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation || pgErr.Code == pgerrcode.RestrictViolation
	}
	var se sqliteCoder
	if errors.As(err, &se) && se.Code() == sqliteConstraintForeignKey {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
