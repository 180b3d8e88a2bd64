package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	ContactNo string `json:"contact_no" validate:"required,min=7,max=20"`
	Address   string `json:"address" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,oneof=admin receptionist doctor pharmacist nurse"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries partial profile updates. Empty fields are left
// unchanged; a non-empty password is re-hashed before storage.
type UpdateUserRequest struct {
	Name      string `json:"name" validate:"omitempty,min=2"`
	ContactNo string `json:"contact_no" validate:"omitempty,min=7,max=20"`
	Address   string `json:"address"`
	Email     string `json:"email" validate:"omitempty,email"`
	Role      string `json:"role" validate:"omitempty,oneof=admin receptionist doctor pharmacist nurse"`
	Password  string `json:"password" validate:"omitempty,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ContactNo string    `json:"contact_no"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// ForgotPasswordResponse returns the raw reset secret in the body so the
// caller can deliver it out-of-band. Handing it back over HTTP is a known
// weakness; an email sender should replace this.
type ForgotPasswordResponse struct {
	ResetToken string `json:"reset_token"`
}
