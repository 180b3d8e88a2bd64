package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdmissionRequest struct {
	PatientID   string `json:"patient_id" validate:"omitempty,uuid"`
	PatientName string `json:"patient_name" validate:"required,min=2"`
	Treatment   string `json:"treatment" validate:"required"`
	Doctor      string `json:"doctor" validate:"required"`
	Date        string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Status      string `json:"status" validate:"required,oneof=Ongoing Completed Pending"`
}

type UpdateAdmissionRequest struct {
	PatientID   string `json:"patient_id" validate:"omitempty,uuid"`
	PatientName string `json:"patient_name" validate:"required,min=2"`
	Treatment   string `json:"treatment" validate:"required"`
	Doctor      string `json:"doctor" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=Ongoing Completed Pending"`
}

type AdmissionResponse struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	PatientName string     `json:"patient_name"`
	Treatment   string     `json:"treatment"`
	Doctor      string     `json:"doctor"`
	Date        time.Time  `json:"date"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
