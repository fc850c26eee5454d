package gym

import (
	"errors"

	gymerrors "github.com/SirTuppy/route-setter-scheduler/internal/gym/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "gyms_pkey":
			return gymerrors.ErrGymAlreadyExists
		case "uq_walls_gym_name":
			return gymerrors.ErrWallAlreadyExists
		}
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.UpdateFailed(err)
}

func mapFetchError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperror.FetchFailed(err)
}
