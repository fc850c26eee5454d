package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User is the local profile of an account managed by the auth provider.
// ID equals the provider's subject.
type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Name        string         `gorm:"column:name;type:varchar(255)"`
	Email       string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Role        string         `gorm:"column:role;type:varchar(20);not null;default:setter"`
	PrimaryGyms pq.StringArray `gorm:"column:primary_gyms;type:text[]"`
	IsActive    bool           `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}
