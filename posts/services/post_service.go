package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/cache"
	"github.com/Vnuja/YumScroll/internal/pkg/log"
	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/internal/utils"
	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	"github.com/Vnuja/YumScroll/posts/models"
	postsRepository "github.com/Vnuja/YumScroll/posts/repository"
	"github.com/Vnuja/YumScroll/posts/validation"
)

const allPostsCacheKey = "posts:all"

// postService implements the PostService interface
type postService struct {
	postRepo     postsRepository.PostRepository
	cacheService *cache.GenericCacheService
}

// NewPostService wires the post service with its dependencies.
func NewPostService(postRepo postsRepository.PostRepository, cacheService *cache.GenericCacheService) PostService {
	return &postService{
		postRepo:     postRepo,
		cacheService: cacheService,
	}
}

// CreatePost creates a new post owned by the acting user
func (s *postService) CreatePost(ctx context.Context, req *models.CreatePostRequest, user *types.UserContext) (*models.Post, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", postsErrors.ErrInvalidPostData)
	}
	if err := validation.ValidateCreatePostRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", postsErrors.ErrInvalidPostData, err)
	}

	postID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate post ID: %w", err)
	}

	now := utils.UTCNow()
	post := &models.Post{
		ID:               postID,
		OwnerUserID:      user.UserID,
		OwnerDisplayName: user.DisplayName,
		Title:            req.Title,
		Description:      req.Description,
		Content:          req.Content,
		MediaURLs:        req.MediaURLs,
		MediaType:        req.MediaType,
		Ingredients:      req.Ingredients,
		Amounts:          req.Amounts,
		Instructions:     req.Instructions,
		CookingTime:      req.CookingTime,
		Servings:         req.Servings,
		Category:         req.Category,
		LikeCount:        0,
		CommentCount:     0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return post, nil
}

// GetPost retrieves a single post by id
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// ListPosts retrieves all posts, newest first. The listing is served
// through the cache; counters may therefore lag one invalidation behind
// on the list view, single-post reads are always fresh.
func (s *postService) ListPosts(ctx context.Context) (*models.PostsListResponse, error) {
	if s.cacheService.IsEnabled() {
		var cached models.PostsListResponse
		if err := s.cacheService.GetCached(ctx, allPostsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &models.PostsListResponse{Posts: posts, Count: len(posts)}
	if s.cacheService.IsEnabled() {
		if err := s.cacheService.CacheData(ctx, allPostsCacheKey, result); err != nil && err != cache.ErrCacheDisabled {
			log.Warn("Failed to cache post list: %v", err)
		}
	}
	return result, nil
}

// ListPostsByOwner retrieves a user's posts, newest first
func (s *postService) ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) (*models.PostsListResponse, error) {
	posts, err := s.postRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &models.PostsListResponse{Posts: posts, Count: len(posts)}, nil
}

// UpdatePost updates a post; only the owner may do so
func (s *postService) UpdatePost(ctx context.Context, id uuid.UUID, req *models.UpdatePostRequest, user *types.UserContext) (*models.Post, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", postsErrors.ErrInvalidPostData)
	}
	if err := validation.ValidateUpdatePostRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", postsErrors.ErrInvalidPostData, err)
	}

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.OwnerUserID != user.UserID {
		return nil, postsErrors.ErrNotPostOwner
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.MediaURLs != nil {
		post.MediaURLs = req.MediaURLs
	}
	if req.MediaType != nil {
		post.MediaType = *req.MediaType
	}
	if req.Ingredients != nil {
		post.Ingredients = req.Ingredients
	}
	if req.Amounts != nil {
		post.Amounts = req.Amounts
	}
	if req.Instructions != nil {
		post.Instructions = req.Instructions
	}
	if req.CookingTime != nil {
		post.CookingTime = *req.CookingTime
	}
	if req.Servings != nil {
		post.Servings = *req.Servings
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	post.UpdatedAt = utils.UTCNow()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return post, nil
}

// DeletePost removes a post; only the owner may do so. Likes, comments
// and related notifications cascade at the schema level so the counters
// cannot orphan.
func (s *postService) DeletePost(ctx context.Context, id uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("%w: user context is required", postsErrors.ErrInvalidPostData)
	}

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if post.OwnerUserID != user.UserID {
		return postsErrors.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *postService) invalidateListCache(ctx context.Context) {
	if !s.cacheService.IsEnabled() {
		return
	}
	if err := s.cacheService.InvalidateKey(ctx, allPostsCacheKey); err != nil {
		log.Warn("Cache invalidation failed for post list: %v", err)
	}
}
