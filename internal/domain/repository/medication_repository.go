package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicationRepository interface {
	Create(ctx context.Context, request *entity.MedicationRequest) error
	FindAll(ctx context.Context) ([]entity.MedicationRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicationRequest, error)
	Update(ctx context.Context, request *entity.MedicationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
