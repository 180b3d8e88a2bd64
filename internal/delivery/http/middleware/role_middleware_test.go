package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoleAllowed(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin, entity.RoleDoctor)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleDoctor))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidden(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleNurse))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleMissingContext(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGroups(t *testing.T) {
	cases := []struct {
		name    string
		handler http.Handler
		role    string
		want    int
	}{
		{"admin can manage users", RequireAdmin(okHandler()), entity.RoleAdmin, http.StatusOK},
		{"nurse cannot manage users", RequireAdmin(okHandler()), entity.RoleNurse, http.StatusForbidden},
		{"receptionist can access patients", RequireWardStaff(okHandler()), entity.RoleReceptionist, http.StatusOK},
		{"pharmacist cannot access patients", RequireWardStaff(okHandler()), entity.RolePharmacist, http.StatusForbidden},
		{"pharmacist can access medication", RequirePharmacyStaff(okHandler()), entity.RolePharmacist, http.StatusOK},
		{"receptionist cannot access medication", RequirePharmacyStaff(okHandler()), entity.RoleReceptionist, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.handler.ServeHTTP(rec, requestWithRole(tc.role))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
