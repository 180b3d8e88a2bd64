package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a ward patient record.
type Patient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Age          int       `gorm:"not null" json:"age"`
	Gender       string    `gorm:"type:varchar(20);not null" json:"gender"`
	AdmittedDate time.Time `gorm:"not null" json:"admitted_date"`
	Diagnosis    string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Discharged   bool      `gorm:"not null;default:false" json:"discharged"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
