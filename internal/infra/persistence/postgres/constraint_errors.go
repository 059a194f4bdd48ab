package postgres

import (
	"strings"

	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking.
// GORM's TranslateError maps driver codes onto the gorm.Err* sentinels.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// translateWriteError converts a failed write into a domain error describing what was being written.
// reference, when non-nil, replaces foreign key violations.
func translateWriteError(err error, what string, reference error) error {
	switch {
	case reference != nil && isForeignKeyConstraintViolation(err):
		return errors.Wrap(reference, what)
	case isCheckConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, what+": check constraint violated")
	case isNotNullConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, what+": missing required value")
	case isUniqueConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, what+": duplicate key")
	default:
		return domainerrors.NewDatabaseExecuteError(err, what)
	}
}
