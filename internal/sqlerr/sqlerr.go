// Package sqlerr classifies storage-layer failures into the typed errors the
// handlers return, so driver errors never leak to clients.
package sqlerr

import (
	"errors"

	"hrms-lite-backend/internal/errs"

	"gorm.io/gorm"
)

// Handle maps a GORM error onto an HTTPError. A write losing a race on a
// unique index still comes back as a duplicate-key 400, a missing row as a
// 404, and anything unrecognized as a generic 500.
//
// Requires the connection to be opened with TranslateError so the MySQL
// driver errors arrive as gorm sentinel errors.
func Handle(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewDuplicateKey("Record already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewNotFound("Resource not found")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewNotFound("Referenced employee does not exist")
	default:
		return errs.NewInternal()
	}
}
