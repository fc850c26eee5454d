package user

import (
	"context"
	"database/sql"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDs(ctx context.Context, ids []string) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]User, error)
	Update(ctx context.Context, u *User) error
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

// Upsert keeps the stored role and primary gyms of an existing profile.
func (r *repository) Upsert(ctx context.Context, u *User) error {
	return r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
	}).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]User, error) {
	var users []User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.conn(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]User, error) {
	var users []User

	q := r.conn(ctx).Order("name ASC")
	if filter.GymID != "" {
		q = q.Where("primary_gyms @> ?", pq.StringArray{filter.GymID})
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}

	err := q.Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn(ctx).Save(u).Error
}
