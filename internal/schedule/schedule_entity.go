package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one gym's plan for one day. At most one exists per gym and date.
type Entry struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GymID        string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_schedule_entries_gym_date"`
	ScheduleDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_schedule_entries_gym_date;index"`
	Comments     string     `gorm:"type:text"`
	Version      int        `gorm:"not null;default:1"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	Walls   []EntryWall   `gorm:"foreignKey:EntryID"`
	Setters []EntrySetter `gorm:"foreignKey:EntryID"`
}

func (Entry) TableName() string {
	return "schedule_entries"
}

func (e Entry) WallIDs() []string {
	out := make([]string, len(e.Walls))
	for i, w := range e.Walls {
		out[i] = w.WallID.String()
	}
	return out
}

func (e Entry) SetterIDs() []string {
	out := make([]string, len(e.Setters))
	for i, s := range e.Setters {
		out[i] = s.UserID.String()
	}
	return out
}

func (e Entry) HasSetter(userID string) bool {
	for _, s := range e.Setters {
		if s.UserID.String() == userID {
			return true
		}
	}
	return false
}

type EntryWall struct {
	EntryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	WallID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (EntryWall) TableName() string {
	return "schedule_entry_walls"
}

type EntrySetter struct {
	EntryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (EntrySetter) TableName() string {
	return "schedule_setters"
}
