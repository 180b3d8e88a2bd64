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

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

func (h *AdmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.admissionUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to add admission record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admission record added successfully", record)
}

func (h *AdmissionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.admissionUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get admission records")
		return
	}

	response.Success(w, http.StatusOK, "Admission records retrieved successfully", records)
}

func (h *AdmissionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid admission record ID")
		return
	}

	record, err := h.admissionUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission record not found")
		default:
			response.InternalServerError(w, "Failed to get admission record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission record retrieved successfully", record)
}

func (h *AdmissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid admission record ID")
		return
	}

	var req dto.UpdateAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.admissionUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission record not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update admission record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission record updated successfully", record)
}

func (h *AdmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid admission record ID")
		return
	}

	if err := h.admissionUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission record not found")
		default:
			response.InternalServerError(w, "Failed to delete admission record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission record deleted successfully", nil)
}
