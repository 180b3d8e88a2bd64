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

var ErrMedicationNotFound = errors.New("medication request not found")

type MedicationUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error)
	GetAll(ctx context.Context) ([]dto.MedicationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicationUsecase struct {
	medicationRepo repository.MedicationRepository
}

func NewMedicationUsecase(medicationRepo repository.MedicationRepository) MedicationUsecase {
	return &medicationUsecase{medicationRepo: medicationRepo}
}

func (u *medicationUsecase) Create(ctx context.Context, req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	request := &entity.MedicationRequest{
		Type:        req.Type,
		Brand:       req.Brand,
		Quantity:    req.Quantity,
		Description: req.Description,
		Urgent:      req.Urgent,
		RequestedAt: time.Now(),
	}

	if err := u.medicationRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return toMedicationResponse(request), nil
}

func (u *medicationUsecase) GetAll(ctx context.Context) ([]dto.MedicationResponse, error) {
	requests, err := u.medicationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MedicationResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *toMedicationResponse(&requests[i]))
	}
	return responses, nil
}

func (u *medicationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicationResponse, error) {
	request, err := u.medicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrMedicationNotFound
	}
	return toMedicationResponse(request), nil
}

func (u *medicationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	request, err := u.medicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrMedicationNotFound
	}

	request.Type = req.Type
	request.Brand = req.Brand
	request.Quantity = req.Quantity
	request.Description = req.Description
	request.Urgent = req.Urgent

	if err := u.medicationRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return toMedicationResponse(request), nil
}

func (u *medicationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	request, err := u.medicationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrMedicationNotFound
	}
	return u.medicationRepo.Delete(ctx, id)
}

func toMedicationResponse(request *entity.MedicationRequest) *dto.MedicationResponse {
	return &dto.MedicationResponse{
		ID:          request.ID,
		Type:        request.Type,
		Brand:       request.Brand,
		Quantity:    request.Quantity,
		Description: request.Description,
		Urgent:      request.Urgent,
		RequestedAt: request.RequestedAt,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
