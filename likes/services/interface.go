package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/likes/models"
)

// LikeService defines the interface for like operations
type LikeService interface {
	// ToggleLike flips the acting user's like on a post and returns the
	// new state together with the post's resulting like count
	ToggleLike(ctx context.Context, postID uuid.UUID, user *types.UserContext) (*models.LikeStatus, error)

	// IsLiked reports whether a user likes a post
	IsLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	// CountLikes counts the likes on a post
	CountLikes(ctx context.Context, postID uuid.UUID) (int, error)
}
