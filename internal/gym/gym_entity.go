package gym

import (
	"time"

	"github.com/google/uuid"
)

// VacationGymID is the pseudo-gym that holds approved time off as
// schedule entries. It is not a physical location.
const VacationGymID = "vacation"

const (
	WallTypeBoulder = "boulder"
	WallTypeRope    = "rope"
)

type Gym struct {
	ID          string  `gorm:"type:varchar(50);primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	Location    string  `gorm:"size:255"`
	PairedGymID *string `gorm:"type:varchar(50)"`
	Active      bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Wall struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GymID           string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_walls_gym_name"`
	Name            string    `gorm:"size:255;not null;uniqueIndex:uq_walls_gym_name"`
	WallType        string    `gorm:"type:varchar(10);not null"`
	Difficulty      float64   `gorm:"type:numeric(3,1);not null;default:0"`
	ClimbsPerSetter float64   `gorm:"type:numeric(5,2);not null;default:0"`
	Angle           *string   `gorm:"type:varchar(20)"`
	Active          bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (w Wall) IsRope() bool { return w.WallType == WallTypeRope }
