package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicationRequest struct {
	Type        string `json:"type" validate:"required,oneof=Tablet Capsule Injection Syrup Other"`
	Brand       string `json:"brand" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
	Description string `json:"description" validate:"required"`
	Urgent      bool   `json:"urgent"`
}

type UpdateMedicationRequest struct {
	Type        string `json:"type" validate:"required,oneof=Tablet Capsule Injection Syrup Other"`
	Brand       string `json:"brand" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
	Description string `json:"description" validate:"required"`
	Urgent      bool   `json:"urgent"`
}

type MedicationResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Brand       string    `json:"brand"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Urgent      bool      `json:"urgent"`
	RequestedAt time.Time `json:"requested_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
