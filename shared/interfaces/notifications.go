package interfaces

import (
	"context"

	"github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
)

// NotificationDispatcher is the public interface for fanning out
// notifications from interaction events. The likes and comments
// services depend on this interface, not on the notifications package,
// so the fan-out policy stays in one place and the services remain
// testable with a mock dispatcher.
//
// Implementations decide whether an event produces a notification at
// all; self-interactions (actor == recipient) never do.
type NotificationDispatcher interface {
	// NotifyLike records a LIKE notification for the post owner.
	NotifyLike(ctx context.Context, recipientID uuid.UUID, actor *types.UserContext, postID uuid.UUID) error

	// NotifyComment records a COMMENT notification for the post owner,
	// referencing both the post and the newly created comment.
	NotifyComment(ctx context.Context, recipientID uuid.UUID, actor *types.UserContext, postID, commentID uuid.UUID) error
}
