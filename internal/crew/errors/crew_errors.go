package crewerrors

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
)

var (
	ErrCrewNotFound = apperror.New(
		apperror.CodeNotFound,
		"crew not found",
		http.StatusNotFound,
	)
	ErrCrewAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"crew with the same name already exists",
		http.StatusConflict,
	)
	ErrNotHeadSetter = apperror.New(
		apperror.CodeInvalidInput,
		"head setter must have the head_setter or admin role",
		http.StatusBadRequest,
	)
	ErrAlreadyMember = apperror.New(
		apperror.CodeConflict,
		"user is already a member of this crew",
		http.StatusConflict,
	)
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"user is not a member of this crew",
		http.StatusNotFound,
	)
)
