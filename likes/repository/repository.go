package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/likes/models"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// Create persists a new like
	Create(ctx context.Context, like *models.Like) error

	// Delete removes a user's like on a post
	Delete(ctx context.Context, postID, userID uuid.UUID) error

	// FindByPostAndUser retrieves a user's like on a post
	FindByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*models.Like, error)

	// ExistsByPostAndUser reports whether a user likes a post
	ExistsByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	// CountByPost counts the likes on a post
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}
