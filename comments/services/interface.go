package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/comments/models"
	"github.com/Vnuja/YumScroll/internal/types"
)

// CommentService defines the interface for comment operations
type CommentService interface {
	// AddComment creates a comment on a post by the acting user
	AddComment(ctx context.Context, postID uuid.UUID, req *models.AddCommentRequest, user *types.UserContext) (*models.Comment, error)

	// UpdateComment edits a comment's content; only the author may do so
	UpdateComment(ctx context.Context, postID, commentID uuid.UUID, req *models.UpdateCommentRequest, user *types.UserContext) (*models.Comment, error)

	// DeleteComment removes a comment; the author or the post owner may do so
	DeleteComment(ctx context.Context, postID, commentID uuid.UUID, user *types.UserContext) error

	// ListComments retrieves a post's comments, oldest first
	ListComments(ctx context.Context, postID uuid.UUID) (*models.CommentsListResponse, error)

	// CountComments counts the comments on a post
	CountComments(ctx context.Context, postID uuid.UUID) (int, error)
}
