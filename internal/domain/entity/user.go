package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account. Password holds the bcrypt hash and is never
// serialized; the reset fields are both nil unless a password reset is pending.
type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                string     `gorm:"type:varchar(255);not null" json:"name"`
	ContactNo           string     `gorm:"type:varchar(20);not null" json:"contact_no"`
	Address             string     `gorm:"type:text;not null" json:"address"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role                string     `gorm:"type:varchar(20);not null;default:receptionist;index" json:"role"`
	Password            string     `gorm:"type:text;not null" json:"-"`
	ResetTokenHash      *string    `gorm:"type:char(64)" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
