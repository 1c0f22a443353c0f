package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/notifications/models"
)

// NotificationService defines the interface for notification operations.
// The fan-out entry points live on shared/interfaces.NotificationDispatcher,
// which the notification service also implements.
type NotificationService interface {
	// ListNotifications retrieves the acting user's notifications, newest first
	ListNotifications(ctx context.Context, user *types.UserContext) (*models.NotificationsListResponse, error)

	// ListUnread retrieves the acting user's unread notifications, newest first
	ListUnread(ctx context.Context, user *types.UserContext) (*models.NotificationsListResponse, error)

	// CountUnread counts the acting user's unread notifications
	CountUnread(ctx context.Context, user *types.UserContext) (int, error)

	// MarkRead marks one of the acting user's notifications as read
	MarkRead(ctx context.Context, notificationID uuid.UUID, user *types.UserContext) error

	// MarkAllRead marks all of the acting user's notifications as read
	MarkAllRead(ctx context.Context, user *types.UserContext) error

	// DeleteNotification removes one of the acting user's notifications
	DeleteNotification(ctx context.Context, notificationID uuid.UUID, user *types.UserContext) error
}
