package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/comments/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	// Create persists a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// FindByID retrieves a comment by id
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)

	// FindByPost retrieves a post's comments, oldest first
	FindByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)

	// Update persists a comment's content
	Update(ctx context.Context, comment *models.Comment) error

	// Delete removes a comment by id
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByPost counts the comments on a post
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}
