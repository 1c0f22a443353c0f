package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/pkg/log"
	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/internal/utils"
	notificationsErrors "github.com/Vnuja/YumScroll/notifications/errors"
	"github.com/Vnuja/YumScroll/notifications/models"
	notificationsRepository "github.com/Vnuja/YumScroll/notifications/repository"
	"github.com/Vnuja/YumScroll/shared/interfaces"
)

// notificationService implements both NotificationService and the
// shared NotificationDispatcher interface. Dispatch runs inside the
// caller's transaction context, so a rolled-back interaction never
// leaves a notification behind.
type notificationService struct {
	notificationRepo notificationsRepository.NotificationRepository
}

// NewNotificationService wires the notification service with its dependencies.
func NewNotificationService(notificationRepo notificationsRepository.NotificationRepository) *notificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

var (
	_ NotificationService               = (*notificationService)(nil)
	_ interfaces.NotificationDispatcher = (*notificationService)(nil)
)

// NotifyLike records a LIKE notification for the post owner
func (s *notificationService) NotifyLike(ctx context.Context, recipientID uuid.UUID, actor *types.UserContext, postID uuid.UUID) error {
	if actor == nil {
		return fmt.Errorf("%w: actor is required", notificationsErrors.ErrInvalidNotification)
	}
	if !models.ShouldNotify(actor.UserID, recipientID) {
		return nil
	}

	notification, err := s.newNotification(recipientID, actor, models.TypeLike, postID, uuid.NullUUID{})
	if err != nil {
		return err
	}
	notification.Message = models.LikeMessage(actor.DisplayName)

	return s.notificationRepo.Create(ctx, notification)
}

// NotifyComment records a COMMENT notification for the post owner
func (s *notificationService) NotifyComment(ctx context.Context, recipientID uuid.UUID, actor *types.UserContext, postID, commentID uuid.UUID) error {
	if actor == nil {
		return fmt.Errorf("%w: actor is required", notificationsErrors.ErrInvalidNotification)
	}
	if !models.ShouldNotify(actor.UserID, recipientID) {
		return nil
	}

	notification, err := s.newNotification(recipientID, actor, models.TypeComment, postID,
		uuid.NullUUID{UUID: commentID, Valid: true})
	if err != nil {
		return err
	}
	notification.Message = models.CommentMessage(actor.DisplayName)

	return s.notificationRepo.Create(ctx, notification)
}

func (s *notificationService) newNotification(recipientID uuid.UUID, actor *types.UserContext, notificationType models.NotificationType, postID uuid.UUID, commentID uuid.NullUUID) (*models.Notification, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	return &models.Notification{
		ID:               id,
		RecipientUserID:  recipientID,
		ActorUserID:      actor.UserID,
		ActorDisplayName: actor.DisplayName,
		Type:             notificationType,
		PostID:           postID,
		CommentID:        commentID,
		Read:             false,
		CreatedAt:        utils.UTCNow(),
	}, nil
}

// ListNotifications retrieves the acting user's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, user *types.UserContext) (*models.NotificationsListResponse, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", notificationsErrors.ErrInvalidNotification)
	}

	notifications, err := s.notificationRepo.FindByRecipient(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &models.NotificationsListResponse{Notifications: notifications, Count: len(notifications)}, nil
}

// ListUnread retrieves the acting user's unread notifications, newest first
func (s *notificationService) ListUnread(ctx context.Context, user *types.UserContext) (*models.NotificationsListResponse, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", notificationsErrors.ErrInvalidNotification)
	}

	notifications, err := s.notificationRepo.FindUnreadByRecipient(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &models.NotificationsListResponse{Notifications: notifications, Count: len(notifications)}, nil
}

// CountUnread counts the acting user's unread notifications
func (s *notificationService) CountUnread(ctx context.Context, user *types.UserContext) (int, error) {
	if user == nil {
		return 0, fmt.Errorf("%w: user context is required", notificationsErrors.ErrInvalidNotification)
	}
	return s.notificationRepo.CountUnreadByRecipient(ctx, user.UserID)
}

// MarkRead marks a notification as read; only the recipient may do so
func (s *notificationService) MarkRead(ctx context.Context, notificationID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("%w: user context is required", notificationsErrors.ErrInvalidNotification)
	}

	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientUserID != user.UserID {
		return notificationsErrors.ErrNotRecipient
	}

	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead marks all of the acting user's notifications as read
func (s *notificationService) MarkAllRead(ctx context.Context, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("%w: user context is required", notificationsErrors.ErrInvalidNotification)
	}

	if err := s.notificationRepo.MarkAllRead(ctx, user.UserID); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "All notifications marked read for user %s", user.UserID)
	return nil
}

// DeleteNotification removes a notification; only the recipient may do so
func (s *notificationService) DeleteNotification(ctx context.Context, notificationID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("%w: user context is required", notificationsErrors.ErrInvalidNotification)
	}

	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientUserID != user.UserID {
		return notificationsErrors.ErrNotRecipient
	}

	return s.notificationRepo.Delete(ctx, notificationID)
}
