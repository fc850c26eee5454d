package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeWallNotFound, "wall not found", http.StatusBadRequest)

		got := apperror.ToHTTP(fmt.Errorf("save cell: %w", err))

		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeWallNotFound, got.Code)
		assert.Equal(t, "wall not found", got.Message)
	})

	t.Run("details are passed through", func(t *testing.T) {
		base := apperror.New(apperror.CodeScheduleConflict, "conflict", http.StatusConflict)
		err := base.WithDetails([]string{"entry-1"})

		got := apperror.ToHTTP(err)

		assert.Equal(t, []string{"entry-1"}, got.Details)
		assert.True(t, errors.Is(err, base))
	})

	t.Run("empty message falls back to code text", func(t *testing.T) {
		err := apperror.New(apperror.CodeDataFetchError, "", http.StatusInternalServerError)

		got := apperror.ToHTTP(err)

		assert.Equal(t, apperror.Message(apperror.CodeDataFetchError), got.Message)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestMessage(t *testing.T) {
	assert.Contains(t, apperror.Message(apperror.CodeSetterNotFound), "setters")
	assert.Equal(t, apperror.Message("SOMETHING_NEW"), apperror.Message("ANOTHER_UNKNOWN"))
}

func TestFetchAndUpdateFailed(t *testing.T) {
	cause := errors.New("connection reset")

	fetch := apperror.FetchFailed(cause)
	update := apperror.UpdateFailed(cause)

	assert.Equal(t, apperror.CodeDataFetchError, fetch.Code)
	assert.Equal(t, apperror.CodeDataUpdateError, update.Code)
	assert.ErrorIs(t, fetch, cause)
	assert.Nil(t, apperror.FetchFailed(nil))
}

type sample struct {
	ScheduleDate string `json:"schedule_date" validate:"required"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	err := v.Struct(sample{})

	mapped := apperror.MapValidationError(err)

	var appErr *apperror.AppError
	assert.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Equal(t, "Schedule Date is required", appErr.Message)
}
