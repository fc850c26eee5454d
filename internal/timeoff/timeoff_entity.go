package timeoff

import (
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

const (
	TypeVacation = "vacation"
	TypeSick     = "sick"
	TypeOther    = "other"
)

type Request struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_time_off_user_dates"`

	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_time_off_user_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_time_off_user_dates"`
	Hours     float64   `gorm:"column:hours;type:numeric(6,2);not null;default:0"`
	Reason    string    `gorm:"column:reason;type:text"`
	Type      string    `gorm:"column:type;type:varchar(20);not null;default:'vacation'"`

	Status       string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index:idx_time_off_status"`
	ApprovedBy   *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	DenialReason *string    `gorm:"column:denial_reason;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Requester *user.User `gorm:"foreignKey:UserID;references:ID"`
}

func (Request) TableName() string { return "time_off" }

// RequesterName is the display name used on vacation entries.
func (r Request) RequesterName() string {
	if r.Requester == nil {
		return ""
	}
	if r.Requester.Name != "" {
		return r.Requester.Name
	}
	return r.Requester.Email
}
