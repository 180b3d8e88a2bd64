package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepo is an in-memory UserRepository with the same lookup semantics
// as the postgres implementation, including the expiry comparison on reset
// token lookups.
type memoryUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := *u
	return &found, nil
}

func (r *memoryUserRepo) FindByResetTokenHash(_ context.Context, hash string, now time.Time) (*entity.User, error) {
	for _, u := range r.users {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == hash &&
			u.ResetTokenExpiresAt != nil && u.ResetTokenExpiresAt.After(now) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) List(_ context.Context, namePattern string) ([]entity.User, error) {
	var users []entity.User
	for _, u := range r.users {
		if namePattern == "" || strings.Contains(strings.ToLower(u.Name), strings.ToLower(namePattern)) {
			users = append(users, *u)
		}
	}
	return users, nil
}

func newTestAccountUsecase() (AccountUsecase, *memoryUserRepo) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := newMemoryUserRepo()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", TokenExpiry: 24 * time.Hour})
	return NewAccountUsecase(log, repo, jwtService), repo
}

func registerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:      "Jordan Blake",
		ContactNo: "0123456789",
		Address:   "12 Ward Lane",
		Email:     email,
		Password:  "secret123",
	}
}

func TestRegisterDefaultsRole(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	user, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	assert.Equal(t, entity.RoleReceptionist, user.Role)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jordan@hospital.test", user.Email)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	uc, repo := newTestAccountUsecase()

	user, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, password.Verify("secret123", stored.Password))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	req := registerRequest("jordan@hospital.test")
	req.Role = "janitor"

	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	req := registerRequest("jordan@hospital.test")
	req.Role = entity.RoleDoctor
	registered, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jordan@hospital.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, entity.RoleDoctor, result.Role)

	// Token claims carry the registered identity and role
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", TokenExpiry: 24 * time.Hour})
	claims, err := jwtService.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jordan@hospital.test",
		Password: "wrong-password",
	})
	_, unknownEmail := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@hospital.test",
		Password: "secret123",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	registered, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), registered.ID, &dto.UpdateUserRequest{
		Name: "Jordan B. Blake",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jordan B. Blake", updated.Name)
	assert.Equal(t, "jordan@hospital.test", updated.Email)
	assert.Equal(t, entity.RoleReceptionist, updated.Role)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	registered, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), registered.ID, &dto.UpdateUserRequest{
		Password: "changed123",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jordan@hospital.test",
		Password: "changed123",
	})
	assert.NoError(t, err)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jordan@hospital.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.Register(context.Background(), registerRequest("first@hospital.test"))
	require.NoError(t, err)
	second, err := uc.Register(context.Background(), registerRequest("second@hospital.test"))
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), second.ID, &dto.UpdateUserRequest{
		Email: "first@hospital.test",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestDeleteAccount(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	registered, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAccount(context.Background(), registered.ID))

	_, err = uc.GetProfile(context.Background(), registered.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, uc.DeleteAccount(context.Background(), registered.ID), ErrUserNotFound)
}

func TestListFiltersByName(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	req := registerRequest("jordan@hospital.test")
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	other := registerRequest("casey@hospital.test")
	other.Name = "Casey Reid"
	_, err = uc.Register(context.Background(), other)
	require.NoError(t, err)

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := uc.List(context.Background(), "casey")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Casey Reid", filtered[0].Name)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	uc, repo := newTestAccountUsecase()

	registered, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	secret, err := uc.RequestPasswordReset(context.Background(), "jordan@hospital.test")
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	// Only the hash is persisted
	stored, err := repo.FindByID(context.Background(), registered.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ResetTokenHash)
	require.NotNil(t, stored.ResetTokenExpiresAt)
	assert.NotEqual(t, secret, *stored.ResetTokenHash)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.ResetTokenExpiresAt, time.Minute)

	require.NoError(t, uc.ResetPassword(context.Background(), secret, "brandnew1"))

	// Reset fields are cleared on redemption
	stored, err = repo.FindByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ResetTokenHash)
	assert.Nil(t, stored.ResetTokenExpiresAt)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jordan@hospital.test",
		Password: "brandnew1",
	})
	assert.NoError(t, err)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jordan@hospital.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordSecondRedemptionFails(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	secret, err := uc.RequestPasswordReset(context.Background(), "jordan@hospital.test")
	require.NoError(t, err)

	require.NoError(t, uc.ResetPassword(context.Background(), secret, "brandnew1"))
	assert.ErrorIs(t, uc.ResetPassword(context.Background(), secret, "another1"), ErrInvalidResetToken)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	uc, repo := newTestAccountUsecase()

	registered, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	secret, err := uc.RequestPasswordReset(context.Background(), "jordan@hospital.test")
	require.NoError(t, err)

	// Push the stored expiry into the past; the secret is still on file but
	// must no longer redeem.
	stored, err := repo.FindByID(context.Background(), registered.ID)
	require.NoError(t, err)
	expired := time.Now().Add(-time.Second)
	stored.ResetTokenExpiresAt = &expired
	require.NoError(t, repo.Update(context.Background(), stored))

	assert.ErrorIs(t, uc.ResetPassword(context.Background(), secret, "brandnew1"), ErrInvalidResetToken)
}

func TestResetPasswordNewRequestInvalidatesOld(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	first, err := uc.RequestPasswordReset(context.Background(), "jordan@hospital.test")
	require.NoError(t, err)
	second, err := uc.RequestPasswordReset(context.Background(), "jordan@hospital.test")
	require.NoError(t, err)

	assert.ErrorIs(t, uc.ResetPassword(context.Background(), first, "brandnew1"), ErrInvalidResetToken)
	assert.NoError(t, uc.ResetPassword(context.Background(), second, "brandnew1"))
}

func TestResetPasswordTooShort(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.Register(context.Background(), registerRequest("jordan@hospital.test"))
	require.NoError(t, err)

	secret, err := uc.RequestPasswordReset(context.Background(), "jordan@hospital.test")
	require.NoError(t, err)

	assert.ErrorIs(t, uc.ResetPassword(context.Background(), secret, "short"), ErrPasswordTooShort)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	uc, _ := newTestAccountUsecase()

	_, err := uc.RequestPasswordReset(context.Background(), "nobody@hospital.test")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
