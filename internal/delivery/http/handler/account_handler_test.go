package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase lets each test script the usecase outcome while the
// handler under test does the real decoding, validation and status mapping.
type stubAccountUsecase struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	forgotFn   func(ctx context.Context, email string) (string, error)
	resetFn    func(ctx context.Context, secret, newPassword string) error
}

func (s *stubAccountUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAccountUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAccountUsecase) GetProfile(context.Context, uuid.UUID) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func (s *stubAccountUsecase) UpdateProfile(context.Context, uuid.UUID, *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func (s *stubAccountUsecase) DeleteAccount(context.Context, uuid.UUID) error {
	return usecase.ErrUserNotFound
}

func (s *stubAccountUsecase) List(context.Context, string) ([]dto.UserResponse, error) {
	return nil, nil
}

func (s *stubAccountUsecase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	return s.forgotFn(ctx, email)
}

func (s *stubAccountUsecase) ResetPassword(ctx context.Context, secret, newPassword string) error {
	return s.resetFn(ctx, secret, newPassword)
}

func newAccountHandler(stub *stubAccountUsecase) *AccountHandler {
	return NewAccountHandler(stub, validator.NewValidator())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRegisterCreated(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		registerFn: func(_ context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
			return &dto.UserResponse{ID: uuid.New(), Name: req.Name, Email: req.Email, Role: "receptionist"}, nil
		},
	})

	body := `{"name":"Jordan Blake","contact_no":"0123456789","address":"12 Ward Lane","email":"jordan@hospital.test","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
}

func TestRegisterConflict(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		registerFn: func(context.Context, *dto.RegisterRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	})

	body := `{"name":"Jordan Blake","contact_no":"0123456789","address":"12 Ward Lane","email":"jordan@hospital.test","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidationFailure(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		registerFn: func(context.Context, *dto.RegisterRequest) (*dto.UserResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	})

	// Password below the six character minimum
	body := `{"name":"Jordan Blake","contact_no":"0123456789","address":"12 Ward Lane","email":"jordan@hospital.test","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		loginFn: func(context.Context, *dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	})

	body := `{"email":"jordan@hospital.test","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid email or password", envelope["message"])
}

func TestLoginSuccess(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		loginFn: func(context.Context, *dto.LoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{Token: "signed-token", Role: "doctor"}, nil
		},
	})

	body := `{"email":"jordan@hospital.test","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, "doctor", data["role"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		forgotFn: func(context.Context, string) (string, error) {
			return "", usecase.ErrUserNotFound
		},
	})

	body := `{"email":"nobody@hospital.test"}`
	req := httptest.NewRequest(http.MethodPost, "/users/forgot-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ForgotPassword(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForgotPasswordReturnsSecret(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		forgotFn: func(context.Context, string) (string, error) {
			return "raw-reset-secret", nil
		},
	})

	body := `{"email":"jordan@hospital.test"}`
	req := httptest.NewRequest(http.MethodPost, "/users/forgot-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ForgotPassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "raw-reset-secret", data["reset_token"])
}

func TestResetPasswordInvalidToken(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		resetFn: func(context.Context, string, string) error {
			return usecase.ErrInvalidResetToken
		},
	})

	body := `{"token":"stale-secret","password":"brandnew1"}`
	req := httptest.NewRequest(http.MethodPost, "/users/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ResetPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetPasswordSuccess(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{
		resetFn: func(context.Context, string, string) error {
			return nil
		},
	})

	body := `{"token":"fresh-secret","password":"brandnew1"}`
	req := httptest.NewRequest(http.MethodPost, "/users/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ResetPassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterMalformedBody(t *testing.T) {
	h := newAccountHandler(&stubAccountUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
