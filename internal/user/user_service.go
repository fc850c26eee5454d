package user

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/contextutil"
	usererrors "github.com/SirTuppy/route-setter-scheduler/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Lookup(ctx context.Context, ids []string) (map[string]UserResponse, error)

	Sync(ctx context.Context, actor domain.Actor) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, id string, isActive bool) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to list users", zap.Error(err))
		return nil, apperror.FetchFailed(err)
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapFindError(err)
	}
	return mapToResponse(*u), nil
}

// Lookup resolves every id or fails with SETTER_NOT_FOUND naming the
// missing ones. Inactive users count as missing.
func (s *service) Lookup(ctx context.Context, ids []string) (map[string]UserResponse, error) {
	out := make(map[string]UserResponse, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	valid := make([]string, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			missing = append(missing, id)
			continue
		}
		valid = append(valid, id)
	}

	users, err := s.repo.FindByIDs(ctx, valid)
	if err != nil {
		return nil, apperror.FetchFailed(err)
	}
	for _, u := range users {
		if u.IsActive {
			out[u.ID.String()] = mapToResponse(u)
		}
	}
	for _, id := range valid {
		if _, ok := out[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, usererrors.ErrSetterNotFound.WithDetails(map[string]any{"setter_ids": missing})
	}
	return out, nil
}

// Sync records the caller's profile the first time they are seen and
// refreshes name and email afterwards. The role is only taken from the
// token on first sight.
func (s *service) Sync(ctx context.Context, actor domain.Actor) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	id, err := uuid.Parse(actor.UserID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	name := actor.Name
	if strings.TrimSpace(name) == "" {
		name = actor.Email
	}
	u := &User{
		ID:       id,
		Name:     name,
		Email:    actor.Email,
		Role:     actor.Role,
		IsActive: true,
	}
	if err := s.repo.Upsert(ctx, u); err != nil {
		l.Error("failed to sync user profile", zap.String("user_id", actor.UserID), zap.Error(err))
		return UserResponse{}, mapWriteError(err)
	}

	stored, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return UserResponse{}, mapFindError(err)
	}
	return mapToResponse(*stored), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if req.Role != nil && !domain.ValidRole(*req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapFindError(err)
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.PrimaryGyms != nil {
		u.PrimaryGyms = dedupe(req.PrimaryGyms)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapWriteError(err)
	}

	l.Info("user updated", zap.String("user_id", id), zap.String("role", u.Role))
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		l.Error("failed to find user", zap.Error(err))
		return mapFindError(err)
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return mapWriteError(err)
	}

	return nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func mapFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	return apperror.FetchFailed(err)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrUserAlreadyExists
	}
	return apperror.UpdateFailed(err)
}

func mapToResponse(u User) UserResponse {
	gyms := []string(u.PrimaryGyms)
	if gyms == nil {
		gyms = []string{}
	}
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		PrimaryGyms: gyms,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
