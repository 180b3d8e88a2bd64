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

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) ([]dto.PatientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{patientRepo: patientRepo}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	admittedDate := time.Now()
	if req.AdmittedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.AdmittedDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		admittedDate = parsed
	}

	patient := &entity.Patient{
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		AdmittedDate: admittedDate,
		Diagnosis:    req.Diagnosis,
		Discharged:   req.Discharged,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	return toPatientResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *toPatientResponse(&patients[i]))
	}
	return responses, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return toPatientResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.AdmittedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.AdmittedDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.AdmittedDate = parsed
	}
	patient.Name = req.Name
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Diagnosis = req.Diagnosis
	patient.Discharged = req.Discharged

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return toPatientResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return u.patientRepo.Delete(ctx, id)
}

func toPatientResponse(patient *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		Age:          patient.Age,
		Gender:       patient.Gender,
		AdmittedDate: patient.AdmittedDate,
		Diagnosis:    patient.Diagnosis,
		Discharged:   patient.Discharged,
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}
}
