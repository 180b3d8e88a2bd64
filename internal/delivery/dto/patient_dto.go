package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Age          int    `json:"age" validate:"required,gt=0"`
	Gender       string `json:"gender" validate:"required"`
	AdmittedDate string `json:"admitted_date" validate:"omitempty"` // Format: YYYY-MM-DD, defaults to now
	Diagnosis    string `json:"diagnosis"`
	Discharged   bool   `json:"discharged"`
}

type UpdatePatientRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Age          int    `json:"age" validate:"required,gt=0"`
	Gender       string `json:"gender" validate:"required"`
	AdmittedDate string `json:"admitted_date" validate:"omitempty"`
	Diagnosis    string `json:"diagnosis"`
	Discharged   bool   `json:"discharged"`
}

type PatientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	AdmittedDate time.Time `json:"admitted_date"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	Discharged   bool      `json:"discharged"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
