package services

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Vnuja/YumScroll/internal/types"
	usersErrors "github.com/Vnuja/YumScroll/users/errors"
	"github.com/Vnuja/YumScroll/users/models"
)

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID, Name: "Nimal"}, nil)

		user, err := service.GetUser(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, "Nimal", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, usersErrors.ErrUserNotFound)

		_, err := service.GetUser(ctx, userID)

		assert.ErrorIs(t, err, usersErrors.ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_CreateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	actor := &types.UserContext{
		UserID:      userID,
		Username:    "nimal@example.com",
		DisplayName: "Nimal",
		Avatar:      "https://cdn.example.com/nimal.png",
		SystemRole:  types.UserRole,
	}

	t.Run("provisions profile from token identity", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("ExistsByID", mock.Anything, userID).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == userID &&
				u.Email == "nimal@example.com" &&
				u.Name == "Nimal" &&
				u.Bio == "Home cook" &&
				u.Role == types.UserRole &&
				!u.CreatedAt.IsZero()
		})).Return(nil)

		bio := "Home cook"
		profile, err := service.CreateProfile(ctx, &models.CreateProfileRequest{Bio: &bio}, actor)

		assert.NoError(t, err)
		assert.Equal(t, "Nimal", profile.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("existing profile is a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("ExistsByID", mock.Anything, userID).Return(true, nil)

		_, err := service.CreateProfile(ctx, &models.CreateProfileRequest{}, actor)

		assert.ErrorIs(t, err, usersErrors.ErrUserAlreadyExists)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing user context rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		_, err := service.CreateProfile(ctx, &models.CreateProfileRequest{}, nil)

		assert.ErrorIs(t, err, usersErrors.ErrInvalidUserData)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	actor := &types.UserContext{UserID: userID, DisplayName: "Nimal"}

	t.Run("updates only provided fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		existing := &models.User{ID: userID, Name: "Nimal", Bio: "old bio"}
		mockRepo.On("FindByID", mock.Anything, userID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "Nimal" && u.Bio == "new bio" && !u.UpdatedAt.IsZero()
		})).Return(nil)

		bio := "new bio"
		updated, err := service.UpdateProfile(ctx, &models.UpdateProfileRequest{Bio: &bio}, actor)

		assert.NoError(t, err)
		assert.Equal(t, "new bio", updated.Bio)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil request rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		_, err := service.UpdateProfile(ctx, nil, actor)

		assert.ErrorIs(t, err, usersErrors.ErrInvalidUserData)
	})

	t.Run("missing user rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, usersErrors.ErrUserNotFound)

		name := "x"
		_, err := service.UpdateProfile(ctx, &models.UpdateProfileRequest{Name: &name}, actor)

		assert.ErrorIs(t, err, usersErrors.ErrUserNotFound)
	})
}
