package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	commentsErrors "github.com/Vnuja/YumScroll/comments/errors"
	"github.com/Vnuja/YumScroll/comments/models"
	commentsRepository "github.com/Vnuja/YumScroll/comments/repository"
	"github.com/Vnuja/YumScroll/comments/validation"
	"github.com/Vnuja/YumScroll/internal/cache"
	"github.com/Vnuja/YumScroll/internal/pkg/log"
	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/internal/utils"
	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	postsRepository "github.com/Vnuja/YumScroll/posts/repository"
	"github.com/Vnuja/YumScroll/shared/interfaces"
	usersErrors "github.com/Vnuja/YumScroll/users/errors"
	userServices "github.com/Vnuja/YumScroll/users/services"
)

// commentService implements the CommentService interface
type commentService struct {
	commentRepo  commentsRepository.CommentRepository
	postRepo     postsRepository.PostRepository
	userService  userServices.UserService
	dispatcher   interfaces.NotificationDispatcher
	cacheService *cache.GenericCacheService
}

// NewCommentService wires the comment service with its dependencies.
func NewCommentService(
	commentRepo commentsRepository.CommentRepository,
	postRepo postsRepository.PostRepository,
	userService userServices.UserService,
	dispatcher interfaces.NotificationDispatcher,
	cacheService *cache.GenericCacheService,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		userService:  userService,
		dispatcher:   dispatcher,
		cacheService: cacheService,
	}
}

func commentsCacheKey(postID uuid.UUID) string {
	return fmt.Sprintf("comments:post:%s", postID)
}

// AddComment creates a comment on a post. The comment row, the counter
// adjustment and the notification commit or roll back together.
func (s *commentService) AddComment(ctx context.Context, postID uuid.UUID, req *models.AddCommentRequest, user *types.UserContext) (*models.Comment, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", commentsErrors.ErrInvalidCommentData)
	}
	if err := validation.ValidateContent(req.Content); err != nil {
		return nil, fmt.Errorf("%w: %v", commentsErrors.ErrInvalidCommentData, err)
	}

	// Both referenced entities must resolve before anything mutates;
	// the user check catches tokens for deleted accounts.
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

	commentID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate comment ID: %w", err)
	}

	now := utils.UTCNow()
	comment := &models.Comment{
		ID:                commentID,
		PostID:            postID,
		AuthorUserID:      user.UserID,
		AuthorDisplayName: user.DisplayName,
		Content:           req.Content,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}
		if _, err := s.postRepo.IncrementCommentCount(txCtx, postID, 1); err != nil {
			return err
		}

		// Commenting on your own post produces no notification.
		if post.OwnerUserID != user.UserID {
			if err := s.dispatcher.NotifyComment(txCtx, post.OwnerUserID, user, postID, comment.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCommentsCache(ctx, postID)
	log.InfoWithContext(ctx, "Comment %s added on post %s by user %s", comment.ID, postID, user.UserID)
	return comment, nil
}

// UpdateComment edits a comment's content. Only the author may edit,
// and the comment must belong to the post named in the route.
func (s *commentService) UpdateComment(ctx context.Context, postID, commentID uuid.UUID, req *models.UpdateCommentRequest, user *types.UserContext) (*models.Comment, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user context is required", commentsErrors.ErrInvalidCommentData)
	}
	if err := validation.ValidateContent(req.Content); err != nil {
		return nil, fmt.Errorf("%w: %v", commentsErrors.ErrInvalidCommentData, err)
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, commentsErrors.ErrPostMismatch
	}
	if comment.AuthorUserID != user.UserID {
		return nil, commentsErrors.ErrNotCommentOwner
	}

	comment.Content = req.Content
	comment.UpdatedAt = utils.UTCNow()

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCommentsCache(ctx, postID)
	return comment, nil
}

// DeleteComment removes a comment. The comment's author may always
// delete it; the post owner may also remove comments from their own
// post. The deletion and the counter adjustment commit together.
func (s *commentService) DeleteComment(ctx context.Context, postID, commentID uuid.UUID, user *types.UserContext) error {
	if user == nil {
		return fmt.Errorf("%w: user context is required", commentsErrors.ErrInvalidCommentData)
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return commentsErrors.ErrPostMismatch
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	isAuthor := comment.AuthorUserID == user.UserID
	isPostOwner := post.OwnerUserID == user.UserID
	if !isAuthor && !isPostOwner {
		return commentsErrors.ErrNotCommentOwner
	}

	err = s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.commentRepo.Delete(txCtx, commentID); err != nil {
			return err
		}
		if _, err := s.postRepo.IncrementCommentCount(txCtx, postID, -1); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCommentsCache(ctx, postID)
	log.InfoWithContext(ctx, "Comment %s deleted from post %s by user %s", commentID, postID, user.UserID)
	return nil
}

// ListComments retrieves a post's comments, oldest first. Listings are
// served through the cache and invalidated on every comment mutation.
func (s *commentService) ListComments(ctx context.Context, postID uuid.UUID) (*models.CommentsListResponse, error) {
	exists, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, postsErrors.ErrPostNotFound
	}

	key := commentsCacheKey(postID)
	if s.cacheService.IsEnabled() {
		var cached models.CommentsListResponse
		if err := s.cacheService.GetCached(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	comments, err := s.commentRepo.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := &models.CommentsListResponse{Comments: comments, Count: len(comments)}
	if s.cacheService.IsEnabled() {
		if err := s.cacheService.CacheData(ctx, key, result); err != nil && err != cache.ErrCacheDisabled {
			log.Warn("Failed to cache comment list: %v", err)
		}
	}
	return result, nil
}

// CountComments counts the comments on a post
func (s *commentService) CountComments(ctx context.Context, postID uuid.UUID) (int, error) {
	exists, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, postsErrors.ErrPostNotFound
	}
	return s.commentRepo.CountByPost(ctx, postID)
}

func (s *commentService) invalidateCommentsCache(ctx context.Context, postID uuid.UUID) {
	if !s.cacheService.IsEnabled() {
		return
	}
	if err := s.cacheService.InvalidateKey(ctx, commentsCacheKey(postID)); err != nil {
		log.Warn("Cache invalidation failed for comment list: %v", err)
	}
}
