package crew

import (
	"context"
	"database/sql"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=crew_repo.go -destination=mock/crew_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Crew) error
	FindAll(ctx context.Context) ([]Crew, error)
	FindByID(ctx context.Context, id string) (*Crew, error)
	Update(ctx context.Context, c *Crew) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, m *Member) error
	RemoveMember(ctx context.Context, crewID, userID string) (int64, error)
	MemberIDsLedBy(ctx context.Context, userID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx != nil {
		return connection.TxDB(r.db, r.tx).WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, c *Crew) error {
	return r.conn(ctx).Omit("Members").Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Crew, error) {
	var crews []Crew
	err := r.conn(ctx).
		Preload("Members").
		Order("name ASC").
		Find(&crews).Error
	return crews, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Crew, error) {
	var c Crew
	err := r.conn(ctx).
		Preload("Members").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Crew) error {
	return r.conn(ctx).Omit("Members").Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	db := r.conn(ctx)
	if err := db.Where("crew_id = ?", id).Delete(&Member{}).Error; err != nil {
		return err
	}
	return db.Delete(&Crew{}, "id = ?", id).Error
}

func (r *repository) AddMember(ctx context.Context, m *Member) error {
	return r.conn(ctx).Create(m).Error
}

func (r *repository) RemoveMember(ctx context.Context, crewID, userID string) (int64, error) {
	res := r.conn(ctx).
		Where("crew_id = ? AND user_id = ?", crewID, userID).
		Delete(&Member{})
	return res.RowsAffected, res.Error
}

// MemberIDsLedBy lists members of every crew the user heads or assists.
func (r *repository) MemberIDsLedBy(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&Member{}).
		Distinct("user_crews.user_id").
		Joins("JOIN crews ON crews.id = user_crews.crew_id AND crews.deleted_at IS NULL").
		Where("crews.head_setter_id = ? OR crews.assistant_head_setter_id = ?", userID, userID).
		Pluck("user_crews.user_id", &ids).Error
	return ids, err
}
