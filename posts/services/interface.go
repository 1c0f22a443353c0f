package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/posts/models"
)

// PostService defines the interface for post operations
type PostService interface {
	// CreatePost creates a new post owned by the acting user
	CreatePost(ctx context.Context, req *models.CreatePostRequest, user *types.UserContext) (*models.Post, error)

	// GetPost retrieves a single post by id
	GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error)

	// ListPosts retrieves all posts, newest first
	ListPosts(ctx context.Context) (*models.PostsListResponse, error)

	// ListPostsByOwner retrieves a user's posts, newest first
	ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) (*models.PostsListResponse, error)

	// UpdatePost updates a post; only the owner may do so
	UpdatePost(ctx context.Context, id uuid.UUID, req *models.UpdatePostRequest, user *types.UserContext) (*models.Post, error)

	// DeletePost removes a post; only the owner may do so
	DeletePost(ctx context.Context, id uuid.UUID, user *types.UserContext) error
}
