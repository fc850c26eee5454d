package gymerrors

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
)

var (
	ErrGymNotFound = apperror.New(
		apperror.CodeNotFound,
		"gym not found",
		http.StatusNotFound,
	)
	ErrGymAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"gym with the same id already exists",
		http.StatusConflict,
	)
	ErrReservedGymID = apperror.New(
		apperror.CodeInvalidInput,
		"gym id is reserved",
		http.StatusBadRequest,
	)
	ErrPairedGymNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"paired gym not found",
		http.StatusBadRequest,
	)
	ErrSelfPairing = apperror.New(
		apperror.CodeInvalidInput,
		"a gym cannot be paired with itself",
		http.StatusBadRequest,
	)
	ErrWallNotFound = apperror.New(
		apperror.CodeWallNotFound,
		"wall not found",
		http.StatusNotFound,
	)
	ErrWallAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a wall with this name already exists in the gym",
		http.StatusConflict,
	)
)
