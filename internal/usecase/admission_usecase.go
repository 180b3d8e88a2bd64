package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
)

var ErrAdmissionNotFound = errors.New("admission record not found")

type AdmissionUsecase interface {
	Create(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error)
	GetAll(ctx context.Context) ([]dto.AdmissionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AdmissionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type admissionUsecase struct {
	admissionRepo repository.AdmissionRepository
}

func NewAdmissionUsecase(admissionRepo repository.AdmissionRepository) AdmissionUsecase {
	return &admissionUsecase{admissionRepo: admissionRepo}
}

func (u *admissionUsecase) Create(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	record := &entity.AdmissionRecord{
		PatientName: req.PatientName,
		Treatment:   req.Treatment,
		Doctor:      req.Doctor,
		Date:        date,
		Status:      req.Status,
	}

	// The patient reference is carried as-is; it is not checked against the
	// patients table.
	if req.PatientID != "" {
		patientID, err := uuid.Parse(req.PatientID)
		if err == nil {
			record.PatientID = &patientID
		}
	}

	if err := u.admissionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return toAdmissionResponse(record), nil
}

func (u *admissionUsecase) GetAll(ctx context.Context) ([]dto.AdmissionResponse, error) {
	records, err := u.admissionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AdmissionResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *toAdmissionResponse(&records[i]))
	}
	return responses, nil
}

func (u *admissionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AdmissionResponse, error) {
	record, err := u.admissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAdmissionNotFound
	}
	return toAdmissionResponse(record), nil
}

func (u *admissionUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error) {
	record, err := u.admissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAdmissionNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	record.PatientName = req.PatientName
	record.Treatment = req.Treatment
	record.Doctor = req.Doctor
	record.Date = date
	record.Status = req.Status
	if req.PatientID != "" {
		patientID, err := uuid.Parse(req.PatientID)
		if err == nil {
			record.PatientID = &patientID
		}
	}

	if err := u.admissionRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return toAdmissionResponse(record), nil
}

func (u *admissionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := u.admissionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrAdmissionNotFound
	}
	return u.admissionRepo.Delete(ctx, id)
}

func toAdmissionResponse(record *entity.AdmissionRecord) *dto.AdmissionResponse {
	return &dto.AdmissionResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		PatientName: record.PatientName,
		Treatment:   record.Treatment,
		Doctor:      record.Doctor,
		Date:        record.Date,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
