package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/password"
	"hospital-management-api/pkg/resettoken"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
)

// resetTokenTTL is how long a password-reset secret stays redeemable.
const resetTokenTTL = time.Hour

type AccountUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, namePattern string) ([]dto.UserResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, secret, newPassword string) error
}

type accountUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewAccountUsecase(log *logrus.Logger, userRepo repository.UserRepository, jwtService *jwt.JWTService) AccountUsecase {
	return &accountUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *accountUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleReceptionist
	}
	if !entity.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:      req.Name,
		ContactNo: req.ContactNo,
		Address:   req.Address,
		Email:     req.Email,
		Role:      role,
		Password:  hashed,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// The pre-check above races with concurrent registrations; the unique
		// index is authoritative.
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return toUserResponse(user), nil
}

func (u *accountUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	// Unknown email and wrong password fail identically so callers cannot
	// probe which addresses hold accounts.
	if user == nil || !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.Issue(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to issue token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{Token: token, Role: user.Role}, nil
}

func (u *accountUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (u *accountUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.ContactNo != "" {
		user.ContactNo = req.ContactNo
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Role != "" {
		if !entity.IsValidRole(req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = req.Role
	}
	if req.Email != "" && req.Email != user.Email {
		taken, err := u.userRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		}
		if taken != nil {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return toUserResponse(user), nil
}

func (u *accountUsecase) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.userRepo.Delete(ctx, id)
}

func (u *accountUsecase) List(ctx context.Context, namePattern string) ([]dto.UserResponse, error) {
	users, err := u.userRepo.List(ctx, namePattern)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// RequestPasswordReset issues a fresh reset secret and stores only its hash
// alongside a one hour expiry. A newer request overwrites the previous fields,
// so at most one secret per user is ever redeemable; the raw secret is handed
// back to the caller for out-of-band delivery.
func (u *accountUsecase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	secret, hash, err := resettoken.Generate()
	if err != nil {
		u.log.Warnf("Failed to generate reset secret: %+v", err)
		return "", err
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	user.ResetTokenHash = &hash
	user.ResetTokenExpiresAt = &expiresAt

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to store reset token: %+v", err)
		return "", err
	}

	return secret, nil
}

// ResetPassword redeems a secret issued by RequestPasswordReset. Expiry is
// enforced here at consume time; there is no background sweep. Both reset
// fields are cleared on success, so a second redemption of the same secret
// fails.
func (u *accountUsecase) ResetPassword(ctx context.Context, secret, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	hash := resettoken.HashSecret(secret)
	user, err := u.userRepo.FindByResetTokenHash(ctx, hash, time.Now())
	if err != nil {
		u.log.Warnf("Failed to look up reset token: %+v", err)
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		u.log.Warnf("Failed to hash new password: %+v", err)
		return err
	}

	user.Password = hashed
	user.ResetTokenHash = nil
	user.ResetTokenExpiresAt = nil

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	return nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		ContactNo: user.ContactNo,
		Address:   user.Address,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
