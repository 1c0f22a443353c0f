package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Vnuja/YumScroll/posts/models"
	"github.com/Vnuja/YumScroll/posts/repository"
)

// MockPostRepository is a mock implementation of PostRepository for testing
type MockPostRepository struct {
	mock.Mock
}

// Ensure MockPostRepository implements PostRepository
var _ repository.PostRepository = (*MockPostRepository)(nil)

// Create mocks the Create method
func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// FindAll mocks the FindAll method
func (m *MockPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

// FindByOwner mocks the FindByOwner method
func (m *MockPostRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Post, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

// Update mocks the Update method
func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ExistsByID mocks the ExistsByID method
func (m *MockPostRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// IncrementLikeCount mocks the IncrementLikeCount method
func (m *MockPostRepository) IncrementLikeCount(ctx context.Context, postID uuid.UUID, delta int) (int, error) {
	args := m.Called(ctx, postID, delta)
	return args.Int(0), args.Error(1)
}

// IncrementCommentCount mocks the IncrementCommentCount method
func (m *MockPostRepository) IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) (int, error) {
	args := m.Called(ctx, postID, delta)
	return args.Int(0), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockPostRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Get(0).(error)
	}
	// Execute the function if no error is expected
	if fn != nil {
		return fn(ctx)
	}
	return args.Error(0)
}
