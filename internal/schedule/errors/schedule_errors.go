package scheduleerrors

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule entry not found",
		http.StatusNotFound,
	)
	ErrVersionConflict = apperror.New(
		apperror.CodeScheduleConflict,
		"the cell was changed by someone else, reload and try again",
		http.StatusConflict,
	)
	ErrWallNotFound = apperror.New(
		apperror.CodeWallNotFound,
		"one or more walls are not in the gym's catalog",
		http.StatusBadRequest,
	)
	ErrHolidayReadOnly = apperror.New(
		apperror.CodeInvalidDate,
		"holidays cannot be scheduled",
		http.StatusBadRequest,
	)
	ErrWeekend = apperror.New(
		apperror.CodeInvalidDate,
		"weekends are not part of the schedule",
		http.StatusBadRequest,
	)
)

const (
	ReasonAlreadyScheduled = "already scheduled"
	ReasonOnTimeOff        = "on approved time off"
	ReasonUnknownSetter    = "setter not found"
)
