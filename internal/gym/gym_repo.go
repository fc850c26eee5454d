package gym

import (
	"context"
	"database/sql"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=gym_repo.go -destination=mock/gym_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, includeInactive bool) ([]Gym, error)
	FindByID(ctx context.Context, id string) (*Gym, error)
	Create(ctx context.Context, g *Gym) error
	Update(ctx context.Context, g *Gym) error
	Upsert(ctx context.Context, g *Gym) error

	FindWallsByGym(ctx context.Context, gymID string, activeOnly bool) ([]Wall, error)
	FindWallByID(ctx context.Context, gymID, id string) (*Wall, error)
	CreateWall(ctx context.Context, w *Wall) error
	UpdateWall(ctx context.Context, w *Wall) error
	UpsertWall(ctx context.Context, w *Wall) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx != nil {
		return connection.TxDB(r.db, r.tx).WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]Gym, error) {
	var gyms []Gym
	q := r.conn(ctx).Order("name ASC")
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&gyms).Error
	return gyms, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Gym, error) {
	var g Gym
	err := r.conn(ctx).First(&g, "id = ?", id).Error
	return &g, err
}

func (r *repository) Create(ctx context.Context, g *Gym) error {
	return r.conn(ctx).Create(g).Error
}

func (r *repository) Update(ctx context.Context, g *Gym) error {
	return r.conn(ctx).Save(g).Error
}

func (r *repository) Upsert(ctx context.Context, g *Gym) error {
	return r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "location", "paired_gym_id", "updated_at"}),
	}).Create(g).Error
}

func (r *repository) FindWallsByGym(ctx context.Context, gymID string, activeOnly bool) ([]Wall, error) {
	var walls []Wall
	q := r.conn(ctx).Where("gym_id = ?", gymID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Order("wall_type DESC, name ASC").Find(&walls).Error
	return walls, err
}

func (r *repository) FindWallByID(ctx context.Context, gymID, id string) (*Wall, error) {
	var w Wall
	err := r.conn(ctx).
		Where("gym_id = ?", gymID).
		First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) CreateWall(ctx context.Context, w *Wall) error {
	return r.conn(ctx).Create(w).Error
}

func (r *repository) UpdateWall(ctx context.Context, w *Wall) error {
	return r.conn(ctx).Save(w).Error
}

func (r *repository) UpsertWall(ctx context.Context, w *Wall) error {
	return r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "gym_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"wall_type", "difficulty", "climbs_per_setter", "angle", "updated_at"}),
	}).Create(w).Error
}
