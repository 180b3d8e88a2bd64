package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type admissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepository(db *gorm.DB) domainRepo.AdmissionRepository {
	return &admissionRepository{db: db}
}

func (r *admissionRepository) Create(ctx context.Context, record *entity.AdmissionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *admissionRepository) FindAll(ctx context.Context) ([]entity.AdmissionRecord, error) {
	var records []entity.AdmissionRecord
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *admissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdmissionRecord, error) {
	var record entity.AdmissionRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *admissionRepository) Update(ctx context.Context, record *entity.AdmissionRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *admissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.AdmissionRecord{}).Error
}
