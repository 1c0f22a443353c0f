package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/likes/errors"
	"github.com/Vnuja/YumScroll/likes/services"
)

// LikeHandler handles all like-related HTTP requests
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler creates a new LikeHandler with injected dependencies
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleLike flips the acting user's like on a post
// Endpoint: POST /api/posts/:postId/likes/toggle
func (h *LikeHandler) ToggleLike(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	status, err := h.likeService.ToggleLike(c.Context(), postID, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(status)
}

// CheckLike reports whether the acting user likes a post
// Endpoint: GET /api/posts/:postId/likes/check
func (h *LikeHandler) CheckLike(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	liked, err := h.likeService.IsLiked(c.Context(), postID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"liked": liked})
}

// CountLikes returns the number of likes on a post
// Endpoint: GET /api/posts/:postId/likes/count
func (h *LikeHandler) CountLikes(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	count, err := h.likeService.CountLikes(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"count": count})
}
