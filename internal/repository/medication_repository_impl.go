package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) domainRepo.MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) Create(ctx context.Context, request *entity.MedicationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *medicationRepository) FindAll(ctx context.Context) ([]entity.MedicationRequest, error) {
	var requests []entity.MedicationRequest
	if err := r.db.WithContext(ctx).Order("requested_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *medicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicationRequest, error) {
	var request entity.MedicationRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *medicationRepository) Update(ctx context.Context, request *entity.MedicationRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *medicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicationRequest{}).Error
}
