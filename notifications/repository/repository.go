package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/notifications/models"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	// Create persists a new notification
	Create(ctx context.Context, notification *models.Notification) error

	// FindByID retrieves a notification by id
	FindByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)

	// FindByRecipient retrieves a user's notifications, newest first
	FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error)

	// FindUnreadByRecipient retrieves a user's unread notifications, newest first
	FindUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error)

	// CountUnreadByRecipient counts a user's unread notifications
	CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error)

	// MarkRead marks a single notification as read
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks all of a user's notifications as read
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error

	// Delete removes a notification by id
	Delete(ctx context.Context, id uuid.UUID) error
}
