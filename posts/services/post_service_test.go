package services

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Vnuja/YumScroll/internal/cache"
	"github.com/Vnuja/YumScroll/internal/types"
	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	"github.com/Vnuja/YumScroll/posts/models"
)

func newTestCacheService() *cache.GenericCacheService {
	cfg := cache.DefaultCacheConfig()
	return cache.NewGenericCacheService(cache.NewMemoryCache(cfg), cfg)
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()
	actor := &types.UserContext{UserID: uuid.Must(uuid.NewV4()), DisplayName: "Kamala"}

	t.Run("creates post with zeroed counters", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			return p.OwnerUserID == actor.UserID &&
				p.OwnerDisplayName == "Kamala" &&
				p.Title == "Kottu Roti" &&
				p.LikeCount == 0 && p.CommentCount == 0 &&
				!p.CreatedAt.IsZero()
		})).Return(nil)

		post, err := service.CreatePost(ctx, &models.CreatePostRequest{Title: "Kottu Roti"}, actor)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, post.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid request rejected before store access", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		_, err := service.CreatePost(ctx, &models.CreatePostRequest{Title: "  "}, actor)

		assert.ErrorIs(t, err, postsErrors.ErrInvalidPostData)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	owner := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
	stranger := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	t.Run("owner can update", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		existing := &models.Post{ID: postID, OwnerUserID: owner.UserID, Title: "old"}
		mockRepo.On("FindByID", mock.Anything, postID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			return p.Title == "new title"
		})).Return(nil)

		title := "new title"
		post, err := service.UpdatePost(ctx, postID, &models.UpdatePostRequest{Title: &title}, owner)

		assert.NoError(t, err)
		assert.Equal(t, "new title", post.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		existing := &models.Post{ID: postID, OwnerUserID: owner.UserID}
		mockRepo.On("FindByID", mock.Anything, postID).Return(existing, nil)

		title := "hijack"
		_, err := service.UpdatePost(ctx, postID, &models.UpdatePostRequest{Title: &title}, stranger)

		assert.ErrorIs(t, err, postsErrors.ErrNotPostOwner)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing post rejected", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		mockRepo.On("FindByID", mock.Anything, postID).Return(nil, postsErrors.ErrPostNotFound)

		title := "x"
		_, err := service.UpdatePost(ctx, postID, &models.UpdatePostRequest{Title: &title}, owner)

		assert.ErrorIs(t, err, postsErrors.ErrPostNotFound)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	owner := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
	stranger := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	t.Run("owner can delete", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		mockRepo.On("FindByID", mock.Anything, postID).Return(&models.Post{ID: postID, OwnerUserID: owner.UserID}, nil)
		mockRepo.On("Delete", mock.Anything, postID).Return(nil)

		assert.NoError(t, service.DeletePost(ctx, postID, owner))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo, newTestCacheService())

		mockRepo.On("FindByID", mock.Anything, postID).Return(&models.Post{ID: postID, OwnerUserID: owner.UserID}, nil)

		assert.ErrorIs(t, service.DeletePost(ctx, postID, stranger), postsErrors.ErrNotPostOwner)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestPostService_ListPosts_Caching(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo, newTestCacheService())

	posts := []models.Post{{ID: uuid.Must(uuid.NewV4()), Title: "Hoppers"}}
	mockRepo.On("FindAll", mock.Anything).Return(posts, nil).Once()

	// First call hits the repository, second is served from cache.
	first, err := service.ListPosts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Count)

	second, err := service.ListPosts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, second.Count)
	assert.Equal(t, "Hoppers", second.Posts[0].Title)

	mockRepo.AssertExpectations(t)
}
