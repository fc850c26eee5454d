package exporterrors

import (
	"net/http"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
)

var (
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"format must be one of pdf, xlsx, json",
		http.StatusBadRequest,
	)
	ErrVacationGym = apperror.New(
		apperror.CodeInvalidInput,
		"the vacation calendar has no yellow page",
		http.StatusBadRequest,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to render export",
		http.StatusInternalServerError,
	)
)
