package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/posts/models"
)

// PostRepository defines the interface for post-specific database operations.
// The counter methods are the only way like_count/comment_count may be
// mutated: each is a single atomic UPDATE so concurrent interactions on
// the same post never lose updates.
type PostRepository interface {
	// Create persists a new post
	Create(ctx context.Context, post *models.Post) error

	// FindByID retrieves a post by id, ErrPostNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)

	// FindAll retrieves posts, newest first
	FindAll(ctx context.Context) ([]models.Post, error)

	// FindByOwner retrieves a user's posts, newest first
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error)

	// Update persists mutable post fields (never the counters)
	Update(ctx context.Context, post *models.Post) error

	// Delete removes a post; likes/comments/notifications cascade in the schema
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID reports whether a post exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// IncrementLikeCount atomically adjusts like_count by delta and
	// returns the resulting value
	IncrementLikeCount(ctx context.Context, postID uuid.UUID, delta int) (int, error)

	// IncrementCommentCount atomically adjusts comment_count by delta
	// and returns the resulting value
	IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) (int, error)

	// WithTransaction executes fn within a database transaction. The
	// transaction is injected into the context so every repository
	// participating in the unit of work runs on the same connection.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
