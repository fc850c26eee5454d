package presenceerrors

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
)

var (
	ErrCellLocked = apperror.New(
		apperror.CodeScheduleConflict,
		"cell is being edited by another user",
		http.StatusConflict,
	)
	ErrInvalidCell = apperror.New(
		apperror.CodeInvalidInput,
		"cell must look like {gymId}-{date}",
		http.StatusBadRequest,
	)
	ErrNotFocused = apperror.New(
		apperror.CodeInvalidState,
		"cell is not focused by this user",
		http.StatusConflict,
	)
)
