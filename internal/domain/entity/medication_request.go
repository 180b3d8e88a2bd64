package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication types accepted for a request.
const (
	MedicationTablet    = "Tablet"
	MedicationCapsule   = "Capsule"
	MedicationInjection = "Injection"
	MedicationSyrup     = "Syrup"
	MedicationOther     = "Other"
)

// MedicationRequest is a pharmacy restock request raised by ward staff.
type MedicationRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Brand       string    `gorm:"type:varchar(255);not null" json:"brand"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Urgent      bool      `gorm:"not null;default:false" json:"urgent"`
	RequestedAt time.Time `gorm:"not null" json:"requested_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicationRequest) TableName() string {
	return "medication_requests"
}
