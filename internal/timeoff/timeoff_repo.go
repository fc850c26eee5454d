package timeoff

import (
	"context"
	"database/sql"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"gorm.io/gorm"
)

// Filter narrows FindAll. A nil UserIDs means every user.
type Filter struct {
	UserIDs []string
	Status  string
}

//go:generate mockgen -source=timeoff_repo.go -destination=mock/timeoff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, r *Request) error
	FindAll(ctx context.Context, f Filter) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	// Transition writes r's status fields only while the stored status is one
	// of from. It reports false when another writer got there first.
	Transition(ctx context.Context, r *Request, from ...string) (bool, error)
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.conn(ctx).Omit("Requester").Create(req).Error
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]Request, error) {
	var out []Request
	q := r.conn(ctx).Preload("Requester")
	if f.UserIDs != nil {
		q = q.Where("user_id IN ?", f.UserIDs)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	err := q.Order("start_date DESC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.conn(ctx).Preload("Requester").First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) Transition(ctx context.Context, req *Request, from ...string) (bool, error) {
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND status IN ?", req.ID, from).
		Updates(map[string]any{
			"status":        req.Status,
			"approved_by":   req.ApprovedBy,
			"denial_reason": req.DenialReason,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
