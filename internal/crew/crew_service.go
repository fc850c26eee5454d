package crew

import (
	"context"
	"database/sql"
	"errors"

	crewerrors "github.com/SirTuppy/route-setter-scheduler/internal/crew/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserDirectory resolves user ids to profiles.
type UserDirectory interface {
	Lookup(ctx context.Context, ids []string) (map[string]user.UserResponse, error)
}

//go:generate mockgen -source=crew_service.go -destination=mock/crew_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCrewRequest) (CrewResponse, error)
	GetAll(ctx context.Context) ([]CrewResponse, error)
	GetByID(ctx context.Context, id string) (CrewResponse, error)
	Update(ctx context.Context, id string, req UpdateCrewRequest) (CrewResponse, error)
	Delete(ctx context.Context, id string) error

	SetHeadSetter(ctx context.Context, id string, userID *string) (CrewResponse, error)
	SetAssistantHeadSetter(ctx context.Context, id string, userID *string) (CrewResponse, error)
	AddMember(ctx context.Context, id, userID string) (CrewResponse, error)
	RemoveMember(ctx context.Context, id, userID string) error

	MemberIDsLedBy(ctx context.Context, userID string) ([]string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  UserDirectory
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users UserDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("crew.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("crew.service")
	}
	return &service{db: db, repo: repo, users: users, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCrewRequest) (CrewResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CrewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c := &Crew{
		ID:     uuid.New(),
		Name:   req.Name,
		GymIDs: datatypes.JSONSlice[string](nonNil(req.GymIDs)),
	}

	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create crew failed", zap.String("name", req.Name), zap.Error(err))
		return CrewResponse{}, mapWriteError(err)
	}

	if err := tx.Commit(); err != nil {
		return CrewResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CrewResponse, error) {
	crews, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.FetchFailed(err)
	}

	res := make([]CrewResponse, len(crews))
	for i, c := range crews {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CrewResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CrewResponse{}, mapFindError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCrewRequest) (CrewResponse, error) {
	return s.mutate(ctx, id, func(c *Crew) error {
		c.Name = req.Name
		c.GymIDs = datatypes.JSONSlice[string](nonNil(req.GymIDs))
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapFindError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return apperror.UpdateFailed(err)
	}

	return tx.Commit()
}

// SetHeadSetter assigns or clears the crew's head setter. The assignee must
// hold the head_setter or admin role.
func (s *service) SetHeadSetter(ctx context.Context, id string, userID *string) (CrewResponse, error) {
	lead, err := s.resolveLead(ctx, userID, true)
	if err != nil {
		return CrewResponse{}, err
	}
	return s.mutate(ctx, id, func(c *Crew) error {
		c.HeadSetterID = lead
		return nil
	})
}

func (s *service) SetAssistantHeadSetter(ctx context.Context, id string, userID *string) (CrewResponse, error) {
	lead, err := s.resolveLead(ctx, userID, false)
	if err != nil {
		return CrewResponse{}, err
	}
	return s.mutate(ctx, id, func(c *Crew) error {
		c.AssistantHeadSetterID = lead
		return nil
	})
}

func (s *service) resolveLead(ctx context.Context, userID *string, requireHead bool) (*uuid.UUID, error) {
	if userID == nil || *userID == "" {
		return nil, nil
	}

	profiles, err := s.users.Lookup(ctx, []string{*userID})
	if err != nil {
		return nil, err
	}
	if requireHead {
		role := profiles[*userID].Role
		if role != domain.RoleHeadSetter && role != domain.RoleAdmin {
			return nil, crewerrors.ErrNotHeadSetter
		}
	}

	uid := uuid.MustParse(*userID)
	return &uid, nil
}

func (s *service) AddMember(ctx context.Context, id, userID string) (CrewResponse, error) {
	if _, err := s.users.Lookup(ctx, []string{userID}); err != nil {
		return CrewResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CrewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CrewResponse{}, mapFindError(err)
	}

	m := Member{CrewID: c.ID, UserID: uuid.MustParse(userID)}
	if err := qtx.AddMember(ctx, &m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return CrewResponse{}, crewerrors.ErrAlreadyMember
		}
		return CrewResponse{}, apperror.UpdateFailed(err)
	}

	if err := tx.Commit(); err != nil {
		return CrewResponse{}, err
	}

	c.Members = append(c.Members, m)
	s.logger.Info("crew member added", zap.String("crew_id", id), zap.String("user_id", userID))
	return mapToResponse(*c), nil
}

func (s *service) RemoveMember(ctx context.Context, id, userID string) error {
	n, err := s.repo.RemoveMember(ctx, id, userID)
	if err != nil {
		return apperror.UpdateFailed(err)
	}
	if n == 0 {
		return crewerrors.ErrMemberNotFound
	}
	return nil
}

func (s *service) MemberIDsLedBy(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.repo.MemberIDsLedBy(ctx, userID)
	if err != nil {
		return nil, apperror.FetchFailed(err)
	}
	return ids, nil
}

func (s *service) mutate(ctx context.Context, id string, apply func(c *Crew) error) (CrewResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CrewResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CrewResponse{}, mapFindError(err)
	}
	if err := apply(c); err != nil {
		return CrewResponse{}, err
	}
	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("update crew failed", zap.String("crew_id", id), zap.Error(err))
		return CrewResponse{}, mapWriteError(err)
	}

	if err := tx.Commit(); err != nil {
		return CrewResponse{}, err
	}

	return mapToResponse(*c), nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func mapFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return crewerrors.ErrCrewNotFound
	}
	return apperror.FetchFailed(err)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return crewerrors.ErrCrewAlreadyExists
	}
	return apperror.UpdateFailed(err)
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func mapToResponse(c Crew) CrewResponse {
	members := make([]string, len(c.Members))
	for i, m := range c.Members {
		members[i] = m.UserID.String()
	}
	return CrewResponse{
		ID:                    c.ID.String(),
		Name:                  c.Name,
		HeadSetterID:          uuidPtrString(c.HeadSetterID),
		AssistantHeadSetterID: uuidPtrString(c.AssistantHeadSetterID),
		GymIDs:                nonNil([]string(c.GymIDs)),
		MemberIDs:             members,
		CreatedAt:             c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:             c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
