package gym

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	gymerrors "github.com/SirTuppy/route-setter-scheduler/internal/gym/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	WallCatalogKeyPrefix = "walls:catalog:"
	wallCatalogTTL       = time.Hour
)

func WallCatalogKey(gymID string) string {
	return WallCatalogKeyPrefix + gymID
}

//go:generate mockgen -source=gym_service.go -destination=mock/gym_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, includeInactive bool) ([]GymResponse, error)
	GetByID(ctx context.Context, id string) (GymResponse, error)
	Create(ctx context.Context, req CreateGymRequest) (GymResponse, error)
	Update(ctx context.Context, id string, req UpdateGymRequest) (GymResponse, error)

	ListWalls(ctx context.Context, gymID string) ([]WallResponse, error)
	Catalog(ctx context.Context, gymID string) ([]Wall, error)
	CreateWall(ctx context.Context, gymID string, req WallRequest) (WallResponse, error)
	UpdateWall(ctx context.Context, gymID, wallID string, req WallRequest) (WallResponse, error)

	ExportCSV(ctx context.Context) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("gym.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gym.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]GymResponse, error) {
	gyms, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		s.logger.Error("list gyms failed", zap.Error(err))
		return nil, mapFetchError(err, gymerrors.ErrGymNotFound)
	}

	resp := make([]GymResponse, 0, len(gyms))
	for _, g := range gyms {
		if g.ID == VacationGymID {
			continue
		}
		resp = append(resp, mapGymResponse(g))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (GymResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return GymResponse{}, mapFetchError(err, gymerrors.ErrGymNotFound)
	}
	return mapGymResponse(*g), nil
}

func (s *service) Create(ctx context.Context, req CreateGymRequest) (GymResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create gym requested", zap.String("request_id", rid), zap.String("gym_id", req.ID))

	if req.ID == VacationGymID {
		return GymResponse{}, gymerrors.ErrReservedGymID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create gym begin tx failed", zap.Error(err))
		return GymResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.validatePairing(ctx, qtx, req.ID, req.PairedGymID); err != nil {
		return GymResponse{}, err
	}

	g := &Gym{
		ID:          req.ID,
		Name:        req.Name,
		Location:    req.Location,
		PairedGymID: req.PairedGymID,
		Active:      true,
	}
	if err := qtx.Create(ctx, g); err != nil {
		s.logger.Error("create gym persist failed", zap.String("gym_id", req.ID), zap.Error(err))
		return GymResponse{}, mapRepositoryError(err, gymerrors.ErrGymNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create gym commit failed", zap.Error(err))
		return GymResponse{}, err
	}
	s.logger.Info("create gym success", zap.String("request_id", rid), zap.String("gym_id", g.ID))

	return mapGymResponse(*g), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateGymRequest) (GymResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update gym begin tx failed", zap.Error(err))
		return GymResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	g, err := qtx.FindByID(ctx, id)
	if err != nil {
		return GymResponse{}, mapFetchError(err, gymerrors.ErrGymNotFound)
	}
	if err := s.validatePairing(ctx, qtx, id, req.PairedGymID); err != nil {
		return GymResponse{}, err
	}

	g.Name = req.Name
	g.Location = req.Location
	g.PairedGymID = req.PairedGymID
	if req.Active != nil {
		g.Active = *req.Active
	}

	if err := qtx.Update(ctx, g); err != nil {
		s.logger.Error("update gym persist failed", zap.String("gym_id", id), zap.Error(err))
		return GymResponse{}, mapRepositoryError(err, gymerrors.ErrGymNotFound)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update gym commit failed", zap.Error(err))
		return GymResponse{}, err
	}
	s.logger.Info("update gym success", zap.String("gym_id", id))

	return mapGymResponse(*g), nil
}

// validatePairing only checks the referenced gym exists. Pairing is not
// mirrored onto the other gym.
func (s *service) validatePairing(ctx context.Context, repo Repository, id string, paired *string) error {
	if paired == nil || *paired == "" {
		return nil
	}
	if *paired == id {
		return gymerrors.ErrSelfPairing
	}
	if _, err := repo.FindByID(ctx, *paired); err != nil {
		return mapFetchError(err, gymerrors.ErrPairedGymNotFound)
	}
	return nil
}

func (s *service) ListWalls(ctx context.Context, gymID string) ([]WallResponse, error) {
	walls, err := s.Catalog(ctx, gymID)
	if err != nil {
		return nil, err
	}
	resp := make([]WallResponse, len(walls))
	for i, w := range walls {
		resp[i] = mapWallResponse(w)
	}
	return resp, nil
}

// Catalog returns the active walls of a gym, served from Redis when warm.
func (s *service) Catalog(ctx context.Context, gymID string) ([]Wall, error) {
	cacheKey := WallCatalogKey(gymID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var walls []Wall
			if json.Unmarshal([]byte(cached), &walls) == nil {
				return walls, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		walls, err := s.repo.FindWallsByGym(ctx, gymID, true)
		if err != nil {
			return nil, mapFetchError(err, gymerrors.ErrGymNotFound)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(walls); err == nil {
				s.rdb.Set(ctx, cacheKey, data, wallCatalogTTL)
			}
		}
		return walls, nil
	})
	if err != nil {
		s.logger.Error("load wall catalog failed", zap.String("gym_id", gymID), zap.Error(err))
		return nil, err
	}

	return v.([]Wall), nil
}

func (s *service) CreateWall(ctx context.Context, gymID string, req WallRequest) (WallResponse, error) {
	if _, err := s.repo.FindByID(ctx, gymID); err != nil {
		return WallResponse{}, mapFetchError(err, gymerrors.ErrGymNotFound)
	}

	w := &Wall{
		ID:              uuid.New(),
		GymID:           gymID,
		Name:            req.Name,
		WallType:        req.WallType,
		Difficulty:      req.Difficulty,
		ClimbsPerSetter: req.ClimbsPerSetter,
		Angle:           req.Angle,
		Active:          true,
	}
	if req.Active != nil {
		w.Active = *req.Active
	}

	if err := s.repo.CreateWall(ctx, w); err != nil {
		s.logger.Error("create wall persist failed", zap.String("gym_id", gymID), zap.Error(err))
		return WallResponse{}, mapRepositoryError(err, gymerrors.ErrWallNotFound)
	}
	s.invalidateCatalog(ctx, gymID)
	s.logger.Info("create wall success", zap.String("gym_id", gymID), zap.String("wall_id", w.ID.String()))

	return mapWallResponse(*w), nil
}

func (s *service) UpdateWall(ctx context.Context, gymID, wallID string, req WallRequest) (WallResponse, error) {
	w, err := s.repo.FindWallByID(ctx, gymID, wallID)
	if err != nil {
		return WallResponse{}, mapFetchError(err, gymerrors.ErrWallNotFound)
	}

	w.Name = req.Name
	w.WallType = req.WallType
	w.Difficulty = req.Difficulty
	w.ClimbsPerSetter = req.ClimbsPerSetter
	w.Angle = req.Angle
	if req.Active != nil {
		w.Active = *req.Active
	}

	if err := s.repo.UpdateWall(ctx, w); err != nil {
		s.logger.Error("update wall persist failed", zap.String("wall_id", wallID), zap.Error(err))
		return WallResponse{}, mapRepositoryError(err, gymerrors.ErrWallNotFound)
	}
	s.invalidateCatalog(ctx, gymID)

	return mapWallResponse(*w), nil
}

func (s *service) invalidateCatalog(ctx context.Context, gymID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := WallCatalogKey(gymID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate wall catalog cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

// ExportCSV renders every gym, active or not, as a CSV sheet.
func (s *service) ExportCSV(ctx context.Context) ([]byte, error) {
	gyms, err := s.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "location", "paired_gym_id", "active"})
	for _, g := range gyms {
		paired := ""
		if g.PairedGymID != nil {
			paired = *g.PairedGymID
		}
		_ = w.Write([]string{g.ID, g.Name, g.Location, paired, strconv.FormatBool(g.Active)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mapGymResponse(g Gym) GymResponse {
	return GymResponse{
		ID:          g.ID,
		Name:        g.Name,
		Location:    g.Location,
		PairedGymID: g.PairedGymID,
		Active:      g.Active,
	}
}

func mapWallResponse(w Wall) WallResponse {
	return WallResponse{
		ID:              w.ID.String(),
		GymID:           w.GymID,
		Name:            w.Name,
		WallType:        w.WallType,
		Difficulty:      w.Difficulty,
		ClimbsPerSetter: w.ClimbsPerSetter,
		Angle:           w.Angle,
		Active:          w.Active,
	}
}
