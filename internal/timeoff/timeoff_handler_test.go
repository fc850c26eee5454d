package timeoff_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/timeoff"
	timeofferrors "github.com/SirTuppy/route-setter-scheduler/internal/timeoff/errors"
	timeoffMock "github.com/SirTuppy/route-setter-scheduler/internal/timeoff/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func setupRouter(t *testing.T, actor domain.Actor) (*gin.Engine, *timeoffMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := timeoffMock.NewMockService(gomock.NewController(t))
	h := timeoff.NewHandler(svc, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.UserID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/time-off", h.GetAll)
	r.GET("/time-off/:id/conflicts", h.Conflicts)
	r.POST("/time-off", h.Create)
	r.POST("/time-off/:id/approve", h.Approve)
	r.POST("/time-off/:id/deny", h.Deny)
	return r, svc
}

func TestTimeOffHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupRouter(t, alice)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), timeoff.CreateTimeOffRequest{
			StartDate: "2025-06-09",
			EndDate:   "2025-06-10",
			Type:      timeoff.TypeSick,
			Hours:     8,
		}).Return(timeoff.TimeOffResponse{ID: "r-1", Status: timeoff.StatusPending}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off",
			strings.NewReader(`{"start_date":"2025-06-09","end_date":"2025-06-10","type":"sick","hours":8}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Ok)
	})

	t.Run("malformed date", func(t *testing.T) {
		r, _ := setupRouter(t, alice)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off",
			strings.NewReader(`{"start_date":"6/9/2025","end_date":"2025-06-10","type":"sick"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidDate, decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		r, _ := setupRouter(t, alice)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off",
			strings.NewReader(`{"start_date":"2025-06-09","end_date":"2025-06-10","type":"holiday"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidInput, decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestTimeOffHandler_GetAll(t *testing.T) {
	r, svc := setupRouter(t, head)
	svc.EXPECT().List(gomock.Any(), gomock.Any(), "pending").Return([]timeoff.TimeOffResponse{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/time-off?status=pending&page=2&page_size=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got []timeoff.TimeOffResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, float64(3), env.Meta["total"])
}

func TestTimeOffHandler_Approve(t *testing.T) {
	id := uuid.NewString()

	t.Run("empty body is not acknowledged", func(t *testing.T) {
		r, svc := setupRouter(t, head)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), id, false).
			Return(timeoff.TimeOffResponse{}, timeofferrors.ErrUnacknowledgedConflicts.WithDetails(timeoff.ConflictsResponse{
				RequestID: id,
				Conflicts: []schedule.SetterEntry{{EntryID: "e-1", GymID: "denton", Date: "2025-06-09"}},
			}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/time-off/"+id+"/approve", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeScheduleConflict, env.Error.Code)
		assert.Len(t, env.Error.Details["conflicts"], 1)
	})

	t.Run("acknowledged", func(t *testing.T) {
		r, svc := setupRouter(t, head)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), id, true).
			Return(timeoff.TimeOffResponse{ID: id, Status: timeoff.StatusApproved}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off/"+id+"/approve", strings.NewReader(`{"acknowledged":true}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTimeOffHandler_Deny(t *testing.T) {
	id := uuid.NewString()

	t.Run("missing reason", func(t *testing.T) {
		r, _ := setupRouter(t, head)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off/"+id+"/deny", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		r, svc := setupRouter(t, head)
		svc.EXPECT().Deny(gomock.Any(), gomock.Any(), id, "short staffed").
			Return(timeoff.TimeOffResponse{ID: id, Status: timeoff.StatusDenied}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off/"+id+"/deny", strings.NewReader(`{"reason":"short staffed"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTimeOffHandler_Conflicts(t *testing.T) {
	id := uuid.NewString()
	r, svc := setupRouter(t, head)
	svc.EXPECT().CheckConflicts(gomock.Any(), gomock.Any(), id).Return(timeoff.ConflictsResponse{RequestID: id}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/time-off/"+id+"/conflicts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
