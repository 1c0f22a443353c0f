package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/users/models"
)

// UserRepository defines the interface for user-specific database operations.
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID retrieves a user by id, ErrUserNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Update persists mutable profile fields
	Update(ctx context.Context, user *models.User) error

	// ExistsByID reports whether a user exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
