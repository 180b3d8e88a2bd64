package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AdmissionRepository interface {
	Create(ctx context.Context, record *entity.AdmissionRecord) error
	FindAll(ctx context.Context) ([]entity.AdmissionRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdmissionRecord, error)
	Update(ctx context.Context, record *entity.AdmissionRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
