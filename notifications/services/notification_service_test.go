package services

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Vnuja/YumScroll/internal/types"
	notificationsErrors "github.com/Vnuja/YumScroll/notifications/errors"
	"github.com/Vnuja/YumScroll/notifications/models"
)

func TestNotificationService_NotifyLike(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	recipientID := uuid.Must(uuid.NewV4())
	actor := &types.UserContext{UserID: uuid.Must(uuid.NewV4()), DisplayName: "Amara"}

	t.Run("records notification for another user's post", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.RecipientUserID == recipientID &&
				n.ActorUserID == actor.UserID &&
				n.Type == models.TypeLike &&
				n.PostID == postID &&
				!n.CommentID.Valid &&
				n.Message == "Amara liked your post" &&
				!n.Read
		})).Return(nil)

		err := service.NotifyLike(ctx, recipientID, actor, postID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("self-like is silently skipped", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		err := service.NotifyLike(ctx, actor.UserID, actor, postID)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestNotificationService_NotifyComment(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	commentID := uuid.Must(uuid.NewV4())
	recipientID := uuid.Must(uuid.NewV4())
	actor := &types.UserContext{UserID: uuid.Must(uuid.NewV4()), DisplayName: "Amara"}

	t.Run("records notification referencing the comment", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == models.TypeComment &&
				n.CommentID.Valid && n.CommentID.UUID == commentID &&
				n.Message == "Amara commented on your post"
		})).Return(nil)

		err := service.NotifyComment(ctx, recipientID, actor, postID, commentID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("self-comment is silently skipped", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		err := service.NotifyComment(ctx, actor.UserID, actor, postID, commentID)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	notificationID := uuid.Must(uuid.NewV4())
	recipient := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
	stranger := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	notification := &models.Notification{ID: notificationID, RecipientUserID: recipient.UserID}

	t.Run("recipient can mark read", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, notificationID).Return(notification, nil)
		mockRepo.On("MarkRead", mock.Anything, notificationID).Return(nil)

		assert.NoError(t, service.MarkRead(ctx, notificationID, recipient))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-recipient rejected", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, notificationID).Return(notification, nil)

		err := service.MarkRead(ctx, notificationID, stranger)

		assert.ErrorIs(t, err, notificationsErrors.ErrNotRecipient)
		mockRepo.AssertNotCalled(t, "MarkRead")
	})

	t.Run("missing notification rejected", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, notificationID).
			Return(nil, notificationsErrors.ErrNotificationNotFound)

		err := service.MarkRead(ctx, notificationID, recipient)

		assert.ErrorIs(t, err, notificationsErrors.ErrNotificationNotFound)
	})
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	ctx := context.Background()
	notificationID := uuid.Must(uuid.NewV4())
	recipient := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
	stranger := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	notification := &models.Notification{ID: notificationID, RecipientUserID: recipient.UserID}

	t.Run("recipient can delete", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, notificationID).Return(notification, nil)
		mockRepo.On("Delete", mock.Anything, notificationID).Return(nil)

		assert.NoError(t, service.DeleteNotification(ctx, notificationID, recipient))
	})

	t.Run("non-recipient rejected", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, notificationID).Return(notification, nil)

		err := service.DeleteNotification(ctx, notificationID, stranger)

		assert.ErrorIs(t, err, notificationsErrors.ErrNotRecipient)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestNotificationService_Listings(t *testing.T) {
	ctx := context.Background()
	recipient := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	t.Run("lists all notifications", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		notifications := []models.Notification{
			{ID: uuid.Must(uuid.NewV4()), RecipientUserID: recipient.UserID, Read: true},
			{ID: uuid.Must(uuid.NewV4()), RecipientUserID: recipient.UserID},
		}
		mockRepo.On("FindByRecipient", mock.Anything, recipient.UserID).Return(notifications, nil)

		result, err := service.ListNotifications(ctx, recipient)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("lists unread notifications", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		unread := []models.Notification{{ID: uuid.Must(uuid.NewV4()), RecipientUserID: recipient.UserID}}
		mockRepo.On("FindUnreadByRecipient", mock.Anything, recipient.UserID).Return(unread, nil)

		result, err := service.ListUnread(ctx, recipient)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Count)
		assert.False(t, result.Notifications[0].Read)
	})

	t.Run("counts unread notifications", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		service := NewNotificationService(mockRepo)

		mockRepo.On("CountUnreadByRecipient", mock.Anything, recipient.UserID).Return(5, nil)

		count, err := service.CountUnread(ctx, recipient)

		assert.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	recipient := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	mockRepo := new(MockNotificationRepository)
	service := NewNotificationService(mockRepo)

	mockRepo.On("MarkAllRead", mock.Anything, recipient.UserID).Return(nil)

	assert.NoError(t, service.MarkAllRead(ctx, recipient))
	mockRepo.AssertExpectations(t)
}
