package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/internal/utils"
	usersErrors "github.com/Vnuja/YumScroll/users/errors"
	"github.com/Vnuja/YumScroll/users/models"
	userRepository "github.com/Vnuja/YumScroll/users/repository"
)

// UserService defines the interface for user operations
type UserService interface {
	// GetUser retrieves a user's public profile by id
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// CreateProfile provisions the acting user's profile from the
	// verified token identity
	CreateProfile(ctx context.Context, req *models.CreateProfileRequest, user *types.UserContext) (*models.User, error)

	// UpdateProfile updates the acting user's own profile
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, user *types.UserContext) (*models.User, error)

	// Exists reports whether the user exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// userService implements the UserService interface
type userService struct {
	userRepo userRepository.UserRepository
}

// NewUserService creates a new instance of the user service
func NewUserService(userRepo userRepository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetUser retrieves a user's public profile by id
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile provisions the acting user's profile. Identity comes
// from the verified token; the request body only seeds optional
// profile fields. Creating twice is a conflict, not an upsert.
func (s *userService) CreateProfile(ctx context.Context, req *models.CreateProfileRequest, user *types.UserContext) (*models.User, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", usersErrors.ErrInvalidUserData)
	}

	exists, err := s.userRepo.ExistsByID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, usersErrors.ErrUserAlreadyExists
	}

	role := user.SystemRole
	if role == "" {
		role = types.UserRole
	}

	now := utils.UTCNow()
	profile := &models.User{
		ID:        user.UserID,
		Email:     user.Username,
		Name:      user.DisplayName,
		Role:      role,
		Avatar:    user.Avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req != nil {
		if req.Name != nil {
			profile.Name = *req.Name
		}
		if req.Bio != nil {
			profile.Bio = *req.Bio
		}
		if req.Specialties != nil {
			profile.Specialties = req.Specialties
		}
		if req.Private != nil {
			profile.Private = *req.Private
		}
		if req.Avatar != nil {
			profile.Avatar = *req.Avatar
		}
	}

	if err := s.userRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile updates the acting user's own profile. The acting
// identity is the only one that can be updated; there is no admin path.
func (s *userService) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, user *types.UserContext) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: update profile request is required", usersErrors.ErrInvalidUserData)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", usersErrors.ErrInvalidUserData)
	}

	existing, err := s.userRepo.FindByID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Bio != nil {
		existing.Bio = *req.Bio
	}
	if req.Specialties != nil {
		existing.Specialties = req.Specialties
	}
	if req.Private != nil {
		existing.Private = *req.Private
	}
	if req.Avatar != nil {
		existing.Avatar = *req.Avatar
	}
	existing.UpdatedAt = utils.UTCNow()

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Exists reports whether the user exists
func (s *userService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.userRepo.ExistsByID(ctx, id)
}
