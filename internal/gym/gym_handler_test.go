package gym_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	gymerrors "github.com/SirTuppy/route-setter-scheduler/internal/gym/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeGymService struct {
	listFn       func(ctx context.Context, includeInactive bool) ([]gym.GymResponse, error)
	getByIDFn    func(ctx context.Context, id string) (gym.GymResponse, error)
	createFn     func(ctx context.Context, req gym.CreateGymRequest) (gym.GymResponse, error)
	updateFn     func(ctx context.Context, id string, req gym.UpdateGymRequest) (gym.GymResponse, error)
	listWallsFn  func(ctx context.Context, gymID string) ([]gym.WallResponse, error)
	catalogFn    func(ctx context.Context, gymID string) ([]gym.Wall, error)
	createWallFn func(ctx context.Context, gymID string, req gym.WallRequest) (gym.WallResponse, error)
	updateWallFn func(ctx context.Context, gymID, wallID string, req gym.WallRequest) (gym.WallResponse, error)
	exportCSVFn  func(ctx context.Context) ([]byte, error)
}

func (f *fakeGymService) List(ctx context.Context, includeInactive bool) ([]gym.GymResponse, error) {
	return f.listFn(ctx, includeInactive)
}
func (f *fakeGymService) GetByID(ctx context.Context, id string) (gym.GymResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeGymService) Create(ctx context.Context, req gym.CreateGymRequest) (gym.GymResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeGymService) Update(ctx context.Context, id string, req gym.UpdateGymRequest) (gym.GymResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeGymService) ListWalls(ctx context.Context, gymID string) ([]gym.WallResponse, error) {
	return f.listWallsFn(ctx, gymID)
}
func (f *fakeGymService) Catalog(ctx context.Context, gymID string) ([]gym.Wall, error) {
	return f.catalogFn(ctx, gymID)
}
func (f *fakeGymService) CreateWall(ctx context.Context, gymID string, req gym.WallRequest) (gym.WallResponse, error) {
	return f.createWallFn(ctx, gymID, req)
}
func (f *fakeGymService) UpdateWall(ctx context.Context, gymID, wallID string, req gym.WallRequest) (gym.WallResponse, error) {
	return f.updateWallFn(ctx, gymID, wallID, req)
}
func (f *fakeGymService) ExportCSV(ctx context.Context) ([]byte, error) {
	return f.exportCSVFn(ctx)
}

func TestGymHandler_GetAll(t *testing.T) {
	svc := &fakeGymService{
		listFn: func(ctx context.Context, includeInactive bool) ([]gym.GymResponse, error) {
			assert.True(t, includeInactive)
			return []gym.GymResponse{{ID: "denton", Name: "Denton", Active: true}}, nil
		},
	}
	h := gym.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/gyms?include_inactive=true", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	var got []gym.GymResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "denton", got[0].ID)
}

func TestGymHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeGymService{
			createFn: func(ctx context.Context, req gym.CreateGymRequest) (gym.GymResponse, error) {
				return gym.GymResponse{ID: req.ID, Name: req.Name, Active: true}, nil
			},
		}
		h := gym.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/gyms", strings.NewReader(`{"id":"grapevine","name":"Grapevine"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := gym.NewHandler(&fakeGymService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/gyms", strings.NewReader(`{"id":"grapevine"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative conflict", func(t *testing.T) {
		svc := &fakeGymService{
			createFn: func(ctx context.Context, req gym.CreateGymRequest) (gym.GymResponse, error) {
				return gym.GymResponse{}, gymerrors.ErrGymAlreadyExists
			},
		}
		h := gym.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/gyms", strings.NewReader(`{"id":"denton","name":"Denton"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestGymHandler_CreateWall(t *testing.T) {
	t.Run("negative invalid wall type", func(t *testing.T) {
		h := gym.NewHandler(&fakeGymService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "design"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/gyms/design/walls",
			strings.NewReader(`{"name":"A9","wall_type":"lead","difficulty":2}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateWall(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative unknown gym", func(t *testing.T) {
		svc := &fakeGymService{
			createWallFn: func(ctx context.Context, gymID string, req gym.WallRequest) (gym.WallResponse, error) {
				assert.Equal(t, "nowhere", gymID)
				return gym.WallResponse{}, gymerrors.ErrGymNotFound
			},
		}
		h := gym.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "nowhere"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/gyms/nowhere/walls",
			strings.NewReader(`{"name":"A9","wall_type":"boulder","difficulty":2,"climbs_per_setter":4}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CreateWall(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGymHandler_ExportCSV(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeGymService{
			exportCSVFn: func(ctx context.Context) ([]byte, error) {
				return []byte("id,name\n"), nil
			},
		}
		h := gym.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/gyms/export.csv", nil)

		h.ExportCSV(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "gyms.csv")
		assert.Equal(t, "id,name\n", w.Body.String())
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeGymService{
			exportCSVFn: func(ctx context.Context) ([]byte, error) {
				return nil, errors.New("boom")
			},
		}
		h := gym.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/gyms/export.csv", nil)

		h.ExportCSV(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Internal server error", env.Error.Message)
	})
}
