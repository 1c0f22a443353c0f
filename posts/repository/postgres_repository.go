package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Vnuja/YumScroll/internal/database/postgres"
	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	"github.com/Vnuja/YumScroll/posts/models"
)

const postColumns = `id, owner_user_id, owner_display_name, title, description, content,
	media_urls, media_type, ingredients, amounts, instructions,
	cooking_time, servings, category, like_count, comment_count, created_at, updated_at`

// postgresRepository implements PostRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresPostRepository creates a new PostgreSQL repository for posts
func NewPostgresPostRepository(client *postgres.Client) PostRepository {
	return &postgresRepository{client: client}
}

// Create persists a new post
func (r *postgresRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES (:id, :owner_user_id, :owner_display_name, :title, :description, :content,
			:media_urls, :media_type, :ingredients, :amounts, :instructions,
			:cooking_time, :servings, :category, :like_count, :comment_count, :created_at, :updated_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindByID retrieves a post by id
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post models.Post
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, postsErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return &post, nil
}

// FindAll retrieves posts, newest first
func (r *postgresRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	var posts []models.Post
	err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// FindByOwner retrieves a user's posts, newest first
func (r *postgresRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE owner_user_id = $1 ORDER BY created_at DESC`

	var posts []models.Post
	err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &posts, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by owner: %w", err)
	}
	return posts, nil
}

// Update persists mutable post fields. The counters are deliberately
// excluded; they only move through the Increment methods.
func (r *postgresRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = :title, description = :description, content = :content,
		    media_urls = :media_urls, media_type = :media_type,
		    ingredients = :ingredients, amounts = :amounts, instructions = :instructions,
		    cooking_time = :cooking_time, servings = :servings, category = :category,
		    updated_at = :updated_at
		WHERE id = :id
	`

	result, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return postsErrors.ErrPostNotFound
	}

	return nil
}

// Delete removes a post by id
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.client.Executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return postsErrors.ErrPostNotFound
	}

	return nil
}

// ExistsByID reports whether a post exists
func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &exists, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

// IncrementLikeCount atomically adjusts like_count by delta and returns
// the resulting value. A single UPDATE with RETURNING avoids the
// read-modify-write race on concurrent toggles.
func (r *postgresRepository) IncrementLikeCount(ctx context.Context, postID uuid.UUID, delta int) (int, error) {
	query := `
		UPDATE posts
		SET like_count = like_count + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING like_count
	`

	var count int
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &count, query, delta, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, postsErrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to increment like count: %w", err)
	}

	return count, nil
}

// IncrementCommentCount atomically adjusts comment_count by delta and
// returns the resulting value.
func (r *postgresRepository) IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) (int, error) {
	query := `
		UPDATE posts
		SET comment_count = comment_count + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING comment_count
	`

	var count int
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &count, query, delta, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, postsErrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("failed to increment comment count: %w", err)
	}

	return count, nil
}

// WithTransaction executes a function within a database transaction
func (r *postgresRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	tx, err := r.client.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Inject transaction into context using the shared key so every
	// repository in this unit of work uses the same connection.
	txCtx := context.WithValue(ctx, postgres.TxContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
