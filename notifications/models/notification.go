package models

import (
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
)

// NotificationType identifies the interaction that produced a notification
type NotificationType string

const (
	TypeLike    NotificationType = "LIKE"
	TypeComment NotificationType = "COMMENT"
)

// Notification is a record of an interaction on a user's post. The
// actor display name is denormalized at write time so listings render
// without a join. CommentID is only set for COMMENT notifications.
type Notification struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	RecipientUserID  uuid.UUID        `json:"recipientUserId" db:"recipient_user_id"`
	ActorUserID      uuid.UUID        `json:"actorUserId" db:"actor_user_id"`
	ActorDisplayName string           `json:"actorDisplayName" db:"actor_display_name"`
	Type             NotificationType `json:"type" db:"type"`
	PostID           uuid.UUID        `json:"postId" db:"post_id"`
	CommentID        uuid.NullUUID    `json:"commentId" db:"comment_id"`
	Message          string           `json:"message" db:"message"`
	Read             bool             `json:"read" db:"read"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
}

// NotificationsListResponse wraps a notification listing
type NotificationsListResponse struct {
	Notifications []Notification `json:"notifications"`
	Count         int            `json:"count"`
}

// ShouldNotify reports whether an interaction warrants a notification.
// Users are never notified about their own interactions.
func ShouldNotify(actorID, recipientID uuid.UUID) bool {
	return actorID != recipientID
}

// LikeMessage renders the notification text for a like
func LikeMessage(actorName string) string {
	return fmt.Sprintf("%s liked your post", actorName)
}

// CommentMessage renders the notification text for a comment
func CommentMessage(actorName string) string {
	return fmt.Sprintf("%s commented on your post", actorName)
}
