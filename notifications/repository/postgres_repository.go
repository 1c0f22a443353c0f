package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Vnuja/YumScroll/internal/database/postgres"
	notificationsErrors "github.com/Vnuja/YumScroll/notifications/errors"
	"github.com/Vnuja/YumScroll/notifications/models"
)

const notificationColumns = `id, recipient_user_id, actor_user_id, actor_display_name,
	type, post_id, comment_id, message, read, created_at`

// postgresRepository implements NotificationRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresNotificationRepository creates a new PostgreSQL repository for notifications
func NewPostgresNotificationRepository(client *postgres.Client) NotificationRepository {
	return &postgresRepository{client: client}
}

// Create persists a new notification
func (r *postgresRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES (:id, :recipient_user_id, :actor_user_id, :actor_display_name,
			:type, :post_id, :comment_id, :message, :read, :created_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// FindByID retrieves a notification by id
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	var notification models.Notification
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &notification, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notificationsErrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return &notification, nil
}

// FindByRecipient retrieves a user's notifications, newest first
func (r *postgresRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE recipient_user_id = $1 ORDER BY created_at DESC`

	var notifications []models.Notification
	err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &notifications, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// FindUnreadByRecipient retrieves a user's unread notifications, newest first
func (r *postgresRepository) FindUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE recipient_user_id = $1 AND read = FALSE ORDER BY created_at DESC`

	var notifications []models.Notification
	err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &notifications, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

// CountUnreadByRecipient counts a user's unread notifications
func (r *postgresRepository) CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_user_id = $1 AND read = FALSE`

	var count int
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &count, query, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks a single notification as read
func (r *postgresRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1`

	result, err := r.client.Executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notificationsErrors.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks all of a user's notifications as read
func (r *postgresRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	query := `UPDATE notifications SET read = TRUE WHERE recipient_user_id = $1 AND read = FALSE`

	_, err := r.client.Executor(ctx).ExecContext(ctx, query, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Delete removes a notification by id
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notifications WHERE id = $1`

	result, err := r.client.Executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notificationsErrors.ErrNotificationNotFound
	}

	return nil
}
