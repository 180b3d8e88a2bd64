package repository

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByResetTokenHash returns the user holding an unexpired reset token
	// with the given hash, or nil when no such token is outstanding.
	FindByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all users, filtered to case-insensitive name substring
	// matches when namePattern is non-empty.
	List(ctx context.Context, namePattern string) ([]entity.User, error)
}
