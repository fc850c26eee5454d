package timeofferrors

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time off request id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidDate,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be one of vacation, sick, other",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"time off request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid time off status transition",
		http.StatusConflict,
	)
	ErrDenialReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required when denying a request",
		http.StatusBadRequest,
	)
	// ErrUnacknowledgedConflicts carries the conflict list in Details.
	ErrUnacknowledgedConflicts = apperror.New(
		apperror.CodeScheduleConflict,
		"requester is scheduled during the requested period",
		http.StatusConflict,
	)
)
