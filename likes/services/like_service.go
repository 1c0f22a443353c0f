package services

import (
	"context"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/pkg/log"
	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/internal/utils"
	likesErrors "github.com/Vnuja/YumScroll/likes/errors"
	"github.com/Vnuja/YumScroll/likes/models"
	likesRepository "github.com/Vnuja/YumScroll/likes/repository"
	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	postsRepository "github.com/Vnuja/YumScroll/posts/repository"
	"github.com/Vnuja/YumScroll/shared/interfaces"
	usersErrors "github.com/Vnuja/YumScroll/users/errors"
	userServices "github.com/Vnuja/YumScroll/users/services"
)

// likeService implements the LikeService interface
type likeService struct {
	likeRepo    likesRepository.LikeRepository
	postRepo    postsRepository.PostRepository
	userService userServices.UserService
	dispatcher  interfaces.NotificationDispatcher
}

// NewLikeService wires the like service with its dependencies.
func NewLikeService(
	likeRepo likesRepository.LikeRepository,
	postRepo postsRepository.PostRepository,
	userService userServices.UserService,
	dispatcher interfaces.NotificationDispatcher,
) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		userService: userService,
		dispatcher:  dispatcher,
	}
}

// ToggleLike flips the acting user's like on a post. The like row, the
// counter adjustment and the notification commit or roll back together,
// so the count always equals the number of like rows. Toggling twice
// restores the original state.
func (s *likeService) ToggleLike(ctx context.Context, postID uuid.UUID, user *types.UserContext) (*models.LikeStatus, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", likesErrors.ErrInvalidLikeData)
	}

	// Both referenced entities must resolve before anything mutates.
	// The post lookup also gives us the owner for the notification
	// decision; the user check catches tokens for deleted accounts.
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	exists, err := s.userService.Exists(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, usersErrors.ErrUserNotFound
	}

	var status models.LikeStatus
	err = s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.likeRepo.FindByPostAndUser(txCtx, postID, user.UserID)
		if err != nil && !errors.Is(err, likesErrors.ErrLikeNotFound) {
			return err
		}

		if existing != nil {
			if err := s.likeRepo.Delete(txCtx, postID, user.UserID); err != nil {
				return err
			}
			count, err := s.postRepo.IncrementLikeCount(txCtx, postID, -1)
			if err != nil {
				return err
			}
			status = models.LikeStatus{Liked: false, LikeCount: count}
			return nil
		}

		likeID, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate like ID: %w", err)
		}

		like := &models.Like{
			ID:        likeID,
			PostID:    postID,
			UserID:    user.UserID,
			CreatedAt: utils.UTCNow(),
		}
		if err := s.likeRepo.Create(txCtx, like); err != nil {
			return err
		}

		count, err := s.postRepo.IncrementLikeCount(txCtx, postID, 1)
		if err != nil {
			return err
		}
		status = models.LikeStatus{Liked: true, LikeCount: count}

		// Liking your own post produces no notification.
		if post.OwnerUserID != user.UserID {
			if err := s.dispatcher.NotifyLike(txCtx, post.OwnerUserID, user, postID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "Like toggled on post %s by user %s: liked=%v count=%d",
		postID, user.UserID, status.Liked, status.LikeCount)
	return &status, nil
}

// IsLiked reports whether a user likes a post
func (s *likeService) IsLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return s.likeRepo.ExistsByPostAndUser(ctx, postID, userID)
}

// CountLikes counts the likes on a post
func (s *likeService) CountLikes(ctx context.Context, postID uuid.UUID) (int, error) {
	exists, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, postsErrors.ErrPostNotFound
	}
	return s.likeRepo.CountByPost(ctx, postID)
}
