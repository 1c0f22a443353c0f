package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Vnuja/YumScroll/comments/models"
	commentsRepository "github.com/Vnuja/YumScroll/comments/repository"
	"github.com/Vnuja/YumScroll/internal/types"
	postsModels "github.com/Vnuja/YumScroll/posts/models"
	postsRepository "github.com/Vnuja/YumScroll/posts/repository"
	"github.com/Vnuja/YumScroll/shared/interfaces"
	usersModels "github.com/Vnuja/YumScroll/users/models"
	userServices "github.com/Vnuja/YumScroll/users/services"
)

// MockCommentRepository is a mock implementation of CommentRepository for testing
type MockCommentRepository struct {
	mock.Mock
}

var _ commentsRepository.CommentRepository = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

// MockPostRepository is a mock implementation of the posts repository
// for testing comment flows against post counters
type MockPostRepository struct {
	mock.Mock
}

var _ postsRepository.PostRepository = (*MockPostRepository)(nil)

func (m *MockPostRepository) Create(ctx context.Context, post *postsModels.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*postsModels.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postsModels.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]postsModels.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postsModels.Post), args.Error(1)
}

func (m *MockPostRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]postsModels.Post, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postsModels.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *postsModels.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) IncrementLikeCount(ctx context.Context, postID uuid.UUID, delta int) (int, error) {
	args := m.Called(ctx, postID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) (int, error) {
	args := m.Called(ctx, postID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Get(0).(error)
	}
	if fn != nil {
		return fn(ctx)
	}
	return args.Error(0)
}

// MockUserService is a mock implementation of the user service for
// testing the acting-user precondition
type MockUserService struct {
	mock.Mock
}

var _ userServices.UserService = (*MockUserService)(nil)

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*usersModels.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usersModels.User), args.Error(1)
}

func (m *MockUserService) CreateProfile(ctx context.Context, req *usersModels.CreateProfileRequest, user *types.UserContext) (*usersModels.User, error) {
	args := m.Called(ctx, req, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usersModels.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req *usersModels.UpdateProfileRequest, user *types.UserContext) (*usersModels.User, error) {
	args := m.Called(ctx, req, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usersModels.User), args.Error(1)
}

func (m *MockUserService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockNotificationDispatcher is a mock implementation of the
// notification dispatcher for testing fan-out decisions
type MockNotificationDispatcher struct {
	mock.Mock
}

var _ interfaces.NotificationDispatcher = (*MockNotificationDispatcher)(nil)

func (m *MockNotificationDispatcher) NotifyLike(ctx context.Context, recipientID uuid.UUID, actor *types.UserContext, postID uuid.UUID) error {
	args := m.Called(ctx, recipientID, actor, postID)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyComment(ctx context.Context, recipientID uuid.UUID, actor *types.UserContext, postID, commentID uuid.UUID) error {
	args := m.Called(ctx, recipientID, actor, postID, commentID)
	return args.Error(0)
}
