package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"
	usererrors "github.com/SirTuppy/route-setter-scheduler/internal/user/errors"
	userMock "github.com/SirTuppy/route-setter-scheduler/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestUserHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	svc.EXPECT().GetAll(gomock.Any(), user.ListFilter{GymID: "hill"}).Return([]user.UserResponse{
		{ID: "1", Name: "Casey", Email: "casey@example.com"},
		{ID: "2", Name: "avery", Email: "avery@example.com"},
		{ID: "3", Name: "Blake", Email: "blake@other.org"},
	}, nil)

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?gym_id=hill&q=example&page_size=1", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got []user.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "avery", got[0].Name)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.Total)
}

func TestUserHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	svc.EXPECT().Sync(gomock.Any(), domain.Actor{UserID: "u-1", Email: "sam@example.com", Role: domain.RoleSetter}).
		Return(user.UserResponse{ID: "u-1", Role: domain.RoleSetter}, nil)

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	c.Set(middleware.ContextUserID, "u-1")
	c.Set(middleware.ContextEmail, "sam@example.com")
	c.Set(middleware.ContextRole, domain.RoleSetter)

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("negative invalid role is rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := user.NewHandler(userMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "u-1"}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/u-1", strings.NewReader(`{"role":"owner"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := userMock.NewMockService(ctrl)
		svc.EXPECT().Update(gomock.Any(), "u-1", gomock.Any()).Return(user.UserResponse{}, usererrors.ErrUserNotFound)

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "u-1"}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/u-1", strings.NewReader(`{"primary_gyms":["hill"]}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	t.Run("negative missing flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := user.NewHandler(userMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/u-1/status", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ToggleStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := userMock.NewMockService(ctrl)
		svc.EXPECT().ToggleStatus(gomock.Any(), "u-1", false).Return(nil)

		h := user.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "u-1"}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/users/u-1/status", strings.NewReader(`{"is_active":false}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ToggleStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
