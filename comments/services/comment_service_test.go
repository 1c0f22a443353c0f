package services

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	commentsErrors "github.com/Vnuja/YumScroll/comments/errors"
	"github.com/Vnuja/YumScroll/comments/models"
	"github.com/Vnuja/YumScroll/internal/cache"
	"github.com/Vnuja/YumScroll/internal/types"
	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	postsModels "github.com/Vnuja/YumScroll/posts/models"
	usersErrors "github.com/Vnuja/YumScroll/users/errors"
)

type commentServiceFixture struct {
	commentRepo *MockCommentRepository
	postRepo    *MockPostRepository
	userService *MockUserService
	dispatcher  *MockNotificationDispatcher
	service     CommentService
}

func newCommentServiceFixture() *commentServiceFixture {
	f := &commentServiceFixture{
		commentRepo: new(MockCommentRepository),
		postRepo:    new(MockPostRepository),
		userService: new(MockUserService),
		dispatcher:  new(MockNotificationDispatcher),
	}
	cfg := cache.DefaultCacheConfig()
	cacheService := cache.NewGenericCacheService(cache.NewMemoryCache(cfg), cfg)
	f.service = NewCommentService(f.commentRepo, f.postRepo, f.userService, f.dispatcher, cacheService)
	return f
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	author := &types.UserContext{UserID: uuid.Must(uuid.NewV4()), DisplayName: "Sanduni"}
	post := &postsModels.Post{ID: postID, OwnerUserID: ownerID}

	t.Run("creates comment, bumps counter and notifies owner", func(t *testing.T) {
		f := newCommentServiceFixture()

		f.postRepo.On("FindByID", mock.Anything, postID).Return(post, nil)
		f.userService.On("Exists", mock.Anything, author.UserID).Return(true, nil)
		f.postRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		f.commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.PostID == postID &&
				c.AuthorUserID == author.UserID &&
				c.AuthorDisplayName == "Sanduni" &&
				c.Content == "Looks great!"
		})).Return(nil)
		f.postRepo.On("IncrementCommentCount", mock.Anything, postID, 1).Return(1, nil)
		f.dispatcher.On("NotifyComment", mock.Anything, ownerID, author, postID, mock.Anything).Return(nil)

		comment, err := f.service.AddComment(ctx, postID, &models.AddCommentRequest{Content: "Looks great!"}, author)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, comment.ID)
		f.commentRepo.AssertExpectations(t)
		f.postRepo.AssertExpectations(t)
		f.dispatcher.AssertExpectations(t)
	})

	t.Run("commenting on own post produces no notification", func(t *testing.T) {
		f := newCommentServiceFixture()
		owner := &types.UserContext{UserID: ownerID, DisplayName: "Owner"}

		f.postRepo.On("FindByID", mock.Anything, postID).Return(post, nil)
		f.userService.On("Exists", mock.Anything, ownerID).Return(true, nil)
		f.postRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		f.commentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.postRepo.On("IncrementCommentCount", mock.Anything, postID, 1).Return(1, nil)

		_, err := f.service.AddComment(ctx, postID, &models.AddCommentRequest{Content: "my own note"}, owner)

		assert.NoError(t, err)
		f.dispatcher.AssertNotCalled(t, "NotifyComment")
	})

	t.Run("deleted acting user fails before any mutation", func(t *testing.T) {
		f := newCommentServiceFixture()
		ghost := &types.UserContext{UserID: uuid.Must(uuid.NewV4()), DisplayName: "Ghost"}

		f.postRepo.On("FindByID", mock.Anything, postID).Return(post, nil)
		f.userService.On("Exists", mock.Anything, ghost.UserID).Return(false, nil)

		_, err := f.service.AddComment(ctx, postID, &models.AddCommentRequest{Content: "hello"}, ghost)

		assert.ErrorIs(t, err, usersErrors.ErrUserNotFound)
		f.postRepo.AssertNotCalled(t, "WithTransaction")
		f.commentRepo.AssertNotCalled(t, "Create")
		f.postRepo.AssertNotCalled(t, "IncrementCommentCount")
		f.dispatcher.AssertNotCalled(t, "NotifyComment")
	})

	t.Run("blank content rejected before store access", func(t *testing.T) {
		f := newCommentServiceFixture()

		_, err := f.service.AddComment(ctx, postID, &models.AddCommentRequest{Content: "   "}, author)

		assert.ErrorIs(t, err, commentsErrors.ErrInvalidCommentData)
		f.postRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("missing post fails before any mutation", func(t *testing.T) {
		f := newCommentServiceFixture()

		f.postRepo.On("FindByID", mock.Anything, postID).Return(nil, postsErrors.ErrPostNotFound)

		_, err := f.service.AddComment(ctx, postID, &models.AddCommentRequest{Content: "hello"}, author)

		assert.ErrorIs(t, err, postsErrors.ErrPostNotFound)
		f.commentRepo.AssertNotCalled(t, "Create")
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	commentID := uuid.Must(uuid.NewV4())
	author := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
	stranger := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	existing := func() *models.Comment {
		return &models.Comment{ID: commentID, PostID: postID, AuthorUserID: author.UserID, Content: "old"}
	}

	t.Run("author can edit", func(t *testing.T) {
		f := newCommentServiceFixture()

		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)
		f.commentRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.Content == "edited"
		})).Return(nil)

		comment, err := f.service.UpdateComment(ctx, postID, commentID, &models.UpdateCommentRequest{Content: "edited"}, author)

		assert.NoError(t, err)
		assert.Equal(t, "edited", comment.Content)
	})

	t.Run("non-author rejected", func(t *testing.T) {
		f := newCommentServiceFixture()

		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)

		_, err := f.service.UpdateComment(ctx, postID, commentID, &models.UpdateCommentRequest{Content: "edited"}, stranger)

		assert.ErrorIs(t, err, commentsErrors.ErrNotCommentOwner)
		f.commentRepo.AssertNotCalled(t, "Update")
	})

	t.Run("comment under a different post rejected", func(t *testing.T) {
		f := newCommentServiceFixture()
		otherPost := uuid.Must(uuid.NewV4())

		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)

		_, err := f.service.UpdateComment(ctx, otherPost, commentID, &models.UpdateCommentRequest{Content: "edited"}, author)

		assert.ErrorIs(t, err, commentsErrors.ErrPostMismatch)
		f.commentRepo.AssertNotCalled(t, "Update")
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	commentID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	author := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}
	postOwner := &types.UserContext{UserID: ownerID}
	stranger := &types.UserContext{UserID: uuid.Must(uuid.NewV4())}

	post := &postsModels.Post{ID: postID, OwnerUserID: ownerID}
	existing := func() *models.Comment {
		return &models.Comment{ID: commentID, PostID: postID, AuthorUserID: author.UserID}
	}

	expectDeletion := func(f *commentServiceFixture) {
		f.postRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		f.commentRepo.On("Delete", mock.Anything, commentID).Return(nil)
		f.postRepo.On("IncrementCommentCount", mock.Anything, postID, -1).Return(0, nil)
	}

	t.Run("author can delete", func(t *testing.T) {
		f := newCommentServiceFixture()
		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)
		f.postRepo.On("FindByID", mock.Anything, postID).Return(post, nil)
		expectDeletion(f)

		assert.NoError(t, f.service.DeleteComment(ctx, postID, commentID, author))
		f.commentRepo.AssertExpectations(t)
	})

	t.Run("post owner can delete another user's comment", func(t *testing.T) {
		f := newCommentServiceFixture()
		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)
		f.postRepo.On("FindByID", mock.Anything, postID).Return(post, nil)
		expectDeletion(f)

		assert.NoError(t, f.service.DeleteComment(ctx, postID, commentID, postOwner))
	})

	t.Run("unrelated user rejected", func(t *testing.T) {
		f := newCommentServiceFixture()
		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)
		f.postRepo.On("FindByID", mock.Anything, postID).Return(post, nil)

		assert.ErrorIs(t, f.service.DeleteComment(ctx, postID, commentID, stranger), commentsErrors.ErrNotCommentOwner)
		f.commentRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("comment under a different post rejected", func(t *testing.T) {
		f := newCommentServiceFixture()
		otherPost := uuid.Must(uuid.NewV4())
		f.commentRepo.On("FindByID", mock.Anything, commentID).Return(existing(), nil)

		assert.ErrorIs(t, f.service.DeleteComment(ctx, otherPost, commentID, author), commentsErrors.ErrPostMismatch)
		f.commentRepo.AssertNotCalled(t, "Delete")
	})
}

func TestCommentService_ListComments(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())

	t.Run("lists comments for existing post", func(t *testing.T) {
		f := newCommentServiceFixture()

		comments := []models.Comment{{ID: uuid.Must(uuid.NewV4()), PostID: postID, Content: "first"}}
		f.postRepo.On("ExistsByID", mock.Anything, postID).Return(true, nil)
		f.commentRepo.On("FindByPost", mock.Anything, postID).Return(comments, nil).Once()

		result, err := f.service.ListComments(ctx, postID)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Count)

		// Second call is served from cache.
		cached, err := f.service.ListComments(ctx, postID)
		assert.NoError(t, err)
		assert.Equal(t, "first", cached.Comments[0].Content)
		f.commentRepo.AssertExpectations(t)
	})

	t.Run("missing post rejected", func(t *testing.T) {
		f := newCommentServiceFixture()
		f.postRepo.On("ExistsByID", mock.Anything, postID).Return(false, nil)

		_, err := f.service.ListComments(ctx, postID)

		assert.ErrorIs(t, err, postsErrors.ErrPostNotFound)
		f.commentRepo.AssertNotCalled(t, "FindByPost")
	})
}

func TestCommentService_CountComments(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())

	t.Run("returns count for existing post", func(t *testing.T) {
		f := newCommentServiceFixture()
		f.postRepo.On("ExistsByID", mock.Anything, postID).Return(true, nil)
		f.commentRepo.On("CountByPost", mock.Anything, postID).Return(4, nil)

		count, err := f.service.CountComments(ctx, postID)

		assert.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("missing post rejected", func(t *testing.T) {
		f := newCommentServiceFixture()
		f.postRepo.On("ExistsByID", mock.Anything, postID).Return(false, nil)

		_, err := f.service.CountComments(ctx, postID)

		assert.ErrorIs(t, err, postsErrors.ErrPostNotFound)
		f.commentRepo.AssertNotCalled(t, "CountByPost")
	})
}
