package handler

import (
	"net/http"

	"hospital-management-api/internal/report"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReportHandler struct {
	accountUsecase usecase.AccountUsecase
}

func NewReportHandler(accountUsecase usecase.AccountUsecase) *ReportHandler {
	return &ReportHandler{accountUsecase: accountUsecase}
}

// UsersReport handles GET /users/pdf.
func (h *ReportHandler) UsersReport(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountUsecase.List(r.Context(), "")
	if err != nil {
		response.InternalServerError(w, "Failed to load users")
		return
	}

	doc, err := report.BuildUsersReport(users)
	if err != nil {
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=users-report.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// UserProfileReport handles GET /users/{id}/pdf.
func (h *ReportHandler) UserProfileReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.accountUsecase.GetProfile(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to load user")
		}
		return
	}

	doc, err := report.BuildUserProfile(user)
	if err != nil {
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=user-profile.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
