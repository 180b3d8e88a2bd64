package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	accountHandler      *handler.AccountHandler
	reportHandler       *handler.ReportHandler
	patientHandler      *handler.PatientHandler
	medicationHandler   *handler.MedicationHandler
	admissionHandler    *handler.AdmissionHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	accountHandler *handler.AccountHandler,
	reportHandler *handler.ReportHandler,
	patientHandler *handler.PatientHandler,
	medicationHandler *handler.MedicationHandler,
	admissionHandler *handler.AdmissionHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		accountHandler:      accountHandler,
		reportHandler:       reportHandler,
		patientHandler:      patientHandler,
		medicationHandler:   medicationHandler,
		admissionHandler:    admissionHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Account routes (public): registration and the credential flows
	usersPublic := r.router.PathPrefix("/users").Subrouter()
	usersPublic.HandleFunc("", r.accountHandler.Register).Methods(http.MethodPost)
	usersPublic.HandleFunc("/login", r.accountHandler.Login).Methods(http.MethodPost)
	usersPublic.HandleFunc("/forgot-password", r.accountHandler.ForgotPassword).Methods(http.MethodPost)
	usersPublic.HandleFunc("/reset-password", r.accountHandler.ResetPassword).Methods(http.MethodPost)

	// Account routes (admin): management, deletion and PDF export
	usersAdmin := r.router.PathPrefix("/users").Subrouter()
	usersAdmin.Use(r.authMiddleware.Authenticate)
	usersAdmin.Use(middleware.RequireAdmin)
	usersAdmin.HandleFunc("/pdf", r.reportHandler.UsersReport).Methods(http.MethodGet)
	usersAdmin.HandleFunc("/{id}/pdf", r.reportHandler.UserProfileReport).Methods(http.MethodGet)
	usersAdmin.HandleFunc("/{id}", r.accountHandler.Update).Methods(http.MethodPut)
	usersAdmin.HandleFunc("/{id}", r.accountHandler.Delete).Methods(http.MethodDelete)

	// Account routes (any authenticated staff): directory reads
	usersRead := r.router.PathPrefix("/users").Subrouter()
	usersRead.Use(r.authMiddleware.Authenticate)
	usersRead.HandleFunc("", r.accountHandler.List).Methods(http.MethodGet)
	usersRead.HandleFunc("/search", r.accountHandler.Search).Methods(http.MethodGet)
	usersRead.HandleFunc("/{id}", r.accountHandler.GetByID).Methods(http.MethodGet)

	// Patient records
	patients := r.router.PathPrefix("/api/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireWardStaff)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAll).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Medication requests
	medication := r.router.PathPrefix("/medication").Subrouter()
	medication.Use(r.authMiddleware.Authenticate)
	medication.Use(middleware.RequirePharmacyStaff)
	medication.HandleFunc("", r.medicationHandler.Create).Methods(http.MethodPost)
	medication.HandleFunc("", r.medicationHandler.GetAll).Methods(http.MethodGet)
	medication.HandleFunc("/{id}", r.medicationHandler.GetByID).Methods(http.MethodGet)
	medication.HandleFunc("/{id}", r.medicationHandler.Update).Methods(http.MethodPut)
	medication.HandleFunc("/{id}", r.medicationHandler.Delete).Methods(http.MethodDelete)

	// Admission / treatment records
	admissions := r.router.PathPrefix("/patientadmit").Subrouter()
	admissions.Use(r.authMiddleware.Authenticate)
	admissions.Use(middleware.RequireWardStaff)
	admissions.HandleFunc("", r.admissionHandler.Create).Methods(http.MethodPost)
	admissions.HandleFunc("", r.admissionHandler.GetAll).Methods(http.MethodGet)
	admissions.HandleFunc("/{id}", r.admissionHandler.GetByID).Methods(http.MethodGet)
	admissions.HandleFunc("/{id}", r.admissionHandler.Update).Methods(http.MethodPut)
	admissions.HandleFunc("/{id}", r.admissionHandler.Delete).Methods(http.MethodDelete)

	// Edge middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
