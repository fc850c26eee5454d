package crew

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Crew struct {
	ID                    uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name                  string                      `gorm:"size:255;not null;uniqueIndex:uq_crews_name"`
	HeadSetterID          *uuid.UUID                  `gorm:"type:uuid;index"`
	AssistantHeadSetterID *uuid.UUID                  `gorm:"type:uuid;index"`
	GymIDs                datatypes.JSONSlice[string] `gorm:"column:gym_ids;type:jsonb"`
	CreatedAt             time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt             time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt              `gorm:"index"`

	Members []Member `gorm:"foreignKey:CrewID"`
}

// Member links a user to a crew.
type Member struct {
	CrewID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Member) TableName() string {
	return "user_crews"
}
