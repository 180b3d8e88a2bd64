package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.medicationUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit medication request")
		return
	}

	response.Success(w, http.StatusCreated, "Medication request submitted successfully", request)
}

func (h *MedicationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.medicationUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medication requests")
		return
	}

	response.Success(w, http.StatusOK, "Medication requests retrieved successfully", requests)
}

func (h *MedicationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medication request ID")
		return
	}

	request, err := h.medicationUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication request not found")
		default:
			response.InternalServerError(w, "Failed to get medication request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication request retrieved successfully", request)
}

func (h *MedicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medication request ID")
		return
	}

	var req dto.UpdateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.medicationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication request not found")
		default:
			response.InternalServerError(w, "Failed to update medication request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication request updated successfully", request)
}

func (h *MedicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medication request ID")
		return
	}

	if err := h.medicationUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication request not found")
		default:
			response.InternalServerError(w, "Failed to delete medication request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication request deleted successfully", nil)
}
