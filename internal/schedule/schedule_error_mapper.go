package schedule

import (
	"errors"

	scheduleerrors "github.com/SirTuppy/route-setter-scheduler/internal/schedule/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func mapFetchError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleerrors.ErrEntryNotFound
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.FetchFailed(err)
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if pgCode(err) == pgUniqueViolation {
		return scheduleerrors.ErrVersionConflict
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.UpdateFailed(err)
}

// setterFailureReason classifies a failed assignment insert. An empty
// reason means the error is not a per-setter failure.
func setterFailureReason(err error) string {
	switch pgCode(err) {
	case pgUniqueViolation:
		return scheduleerrors.ReasonAlreadyScheduled
	case pgForeignKeyViolation:
		return scheduleerrors.ReasonUnknownSetter
	}
	return ""
}
