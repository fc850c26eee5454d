package schedule

import (
	"context"
	"database/sql"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindByID(ctx context.Context, id string) (*Entry, error)
	FindByGymAndDate(ctx context.Context, gymID, date string) (*Entry, error)
	FindBetween(ctx context.Context, from, to string) ([]Entry, error)
	FindWithSetterBetween(ctx context.Context, userID, from, to string) ([]Entry, error)

	Create(ctx context.Context, e *Entry) error
	UpdateHeader(ctx context.Context, e *Entry, expectedVersion int) (bool, error)
	ReplaceWalls(ctx context.Context, entryID uuid.UUID, wallIDs []uuid.UUID) error
	AddSetter(ctx context.Context, entryID, userID uuid.UUID) error
	RemoveSetter(ctx context.Context, entryID uuid.UUID, userID string) (int64, error)
	Delete(ctx context.Context, entryID uuid.UUID) error

	SettersOnTimeOff(ctx context.Context, userIDs []string, date string) ([]string, error)
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

func (r *repository) withJunctions(ctx context.Context) *gorm.DB {
	return r.conn(ctx).Preload("Walls").Preload("Setters")
}

func (r *repository) FindByID(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	err := r.withJunctions(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByGymAndDate(ctx context.Context, gymID, date string) (*Entry, error) {
	var e Entry
	err := r.withJunctions(ctx).
		Where("gym_id = ? AND schedule_date = ?::date", gymID, date).
		First(&e).Error
	return &e, err
}

func (r *repository) FindBetween(ctx context.Context, from, to string) ([]Entry, error) {
	var entries []Entry
	err := r.withJunctions(ctx).
		Where("schedule_date BETWEEN ?::date AND ?::date", from, to).
		Order("schedule_date ASC, gym_id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindWithSetterBetween(ctx context.Context, userID, from, to string) ([]Entry, error) {
	var entries []Entry
	err := r.withJunctions(ctx).
		Where("schedule_date BETWEEN ?::date AND ?::date", from, to).
		Where("EXISTS (SELECT 1 FROM schedule_setters s WHERE s.entry_id = schedule_entries.id AND s.user_id = ?)", userID).
		Order("schedule_date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.conn(ctx).Omit("Walls", "Setters").Create(e).Error
}

// UpdateHeader bumps the version only when the stored version still
// matches expectedVersion.
func (r *repository) UpdateHeader(ctx context.Context, e *Entry, expectedVersion int) (bool, error) {
	res := r.conn(ctx).
		Model(&Entry{}).
		Where("id = ? AND version = ?", e.ID, expectedVersion).
		Updates(map[string]any{
			"comments":   e.Comments,
			"updated_by": e.UpdatedBy,
			"version":    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	e.Version = expectedVersion + 1
	return true, nil
}

func (r *repository) ReplaceWalls(ctx context.Context, entryID uuid.UUID, wallIDs []uuid.UUID) error {
	db := r.conn(ctx)
	if err := db.Where("entry_id = ?", entryID).Delete(&EntryWall{}).Error; err != nil {
		return err
	}
	if len(wallIDs) == 0 {
		return nil
	}
	rows := make([]EntryWall, len(wallIDs))
	for i, id := range wallIDs {
		rows[i] = EntryWall{EntryID: entryID, WallID: id}
	}
	return db.Create(&rows).Error
}

// AddSetter inserts one assignment behind a savepoint so a failed insert
// leaves the surrounding transaction usable.
func (r *repository) AddSetter(ctx context.Context, entryID, userID uuid.UUID) error {
	db := r.conn(ctx)
	if r.tx == nil {
		return db.Create(&EntrySetter{EntryID: entryID, UserID: userID}).Error
	}

	if err := db.Exec("SAVEPOINT add_setter").Error; err != nil {
		return err
	}
	if err := db.Create(&EntrySetter{EntryID: entryID, UserID: userID}).Error; err != nil {
		if rbErr := db.Exec("ROLLBACK TO SAVEPOINT add_setter").Error; rbErr != nil {
			return rbErr
		}
		return err
	}
	return db.Exec("RELEASE SAVEPOINT add_setter").Error
}

func (r *repository) RemoveSetter(ctx context.Context, entryID uuid.UUID, userID string) (int64, error) {
	res := r.conn(ctx).
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		Delete(&EntrySetter{})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, entryID uuid.UUID) error {
	db := r.conn(ctx)
	if err := db.Where("entry_id = ?", entryID).Delete(&EntryWall{}).Error; err != nil {
		return err
	}
	if err := db.Where("entry_id = ?", entryID).Delete(&EntrySetter{}).Error; err != nil {
		return err
	}
	return db.Delete(&Entry{}, "id = ?", entryID).Error
}

// SettersOnTimeOff returns which of userIDs hold approved time off that
// covers date.
func (r *repository) SettersOnTimeOff(ctx context.Context, userIDs []string, date string) ([]string, error) {
	var ids []string
	if len(userIDs) == 0 {
		return ids, nil
	}
	err := r.conn(ctx).
		Table("time_off").
		Distinct("user_id::text").
		Where("status = ?", "approved").
		Where("user_id IN ?", userIDs).
		Where("?::date BETWEEN start_date AND end_date", date).
		Pluck("user_id::text", &ids).Error
	return ids, err
}
