package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Vnuja/YumScroll/internal/database/postgres"
	likesErrors "github.com/Vnuja/YumScroll/likes/errors"
	"github.com/Vnuja/YumScroll/likes/models"
)

// postgresRepository implements LikeRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresLikeRepository creates a new PostgreSQL repository for likes
func NewPostgresLikeRepository(client *postgres.Client) LikeRepository {
	return &postgresRepository{client: client}
}

// Create persists a new like
func (r *postgresRepository) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (id, post_id, user_id, created_at)
		VALUES (:id, :post_id, :user_id, :created_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, like)
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// Delete removes a user's like on a post
func (r *postgresRepository) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	query := `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.client.Executor(ctx).ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return likesErrors.ErrLikeNotFound
	}

	return nil
}

// FindByPostAndUser retrieves a user's like on a post
func (r *postgresRepository) FindByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*models.Like, error) {
	query := `SELECT id, post_id, user_id, created_at FROM likes WHERE post_id = $1 AND user_id = $2`

	var like models.Like
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &like, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, likesErrors.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to find like: %w", err)
	}

	return &like, nil
}

// ExistsByPostAndUser reports whether a user likes a post
func (r *postgresRepository) ExistsByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &exists, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

// CountByPost counts the likes on a post
func (r *postgresRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
