package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	commentsErrors "github.com/Vnuja/YumScroll/comments/errors"
	"github.com/Vnuja/YumScroll/comments/models"
	"github.com/Vnuja/YumScroll/internal/database/postgres"
)

const commentColumns = `id, post_id, author_user_id, author_display_name, content, created_at, updated_at`

// postgresRepository implements CommentRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresCommentRepository creates a new PostgreSQL repository for comments
func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresRepository{client: client}
}

// Create persists a new comment
func (r *postgresRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES (:id, :post_id, :author_user_id, :author_display_name, :content, :created_at, :updated_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByID retrieves a comment by id
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	var comment models.Comment
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &comment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, commentsErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return &comment, nil
}

// FindByPost retrieves a post's comments, oldest first
func (r *postgresRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at ASC`

	var comments []models.Comment
	err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Update persists a comment's content
func (r *postgresRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET content = :content, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, comment)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return commentsErrors.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment by id
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.client.Executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return commentsErrors.ErrCommentNotFound
	}

	return nil
}

// CountByPost counts the comments on a post
func (r *postgresRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM comments WHERE post_id = $1`

	var count int
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
