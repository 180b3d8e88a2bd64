package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admission statuses.
const (
	AdmissionOngoing   = "Ongoing"
	AdmissionCompleted = "Completed"
	AdmissionPending   = "Pending"
)

// AdmissionRecord tracks a treatment episode. PatientID is an optional pointer
// into the patients table; it is not validated against it.
type AdmissionRecord struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   *uuid.UUID `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	PatientName string     `gorm:"type:varchar(255);not null" json:"patient_name"`
	Treatment   string     `gorm:"type:text;not null" json:"treatment"`
	Doctor      string     `gorm:"type:varchar(255);not null" json:"doctor"`
	Date        time.Time  `gorm:"not null" json:"date"`
	Status      string     `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdmissionRecord) TableName() string {
	return "admission_records"
}
