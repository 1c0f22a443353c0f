package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/comments/errors"
	"github.com/Vnuja/YumScroll/comments/models"
	"github.com/Vnuja/YumScroll/comments/services"
	"github.com/Vnuja/YumScroll/internal/types"
)

// CommentHandler handles all comment-related HTTP requests
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment creates a comment on a post
// Endpoint: POST /api/posts/:postId/comments
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	var req models.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	comment, err := h.commentService.AddComment(c.Context(), postID, &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(comment)
}

// ListComments returns a post's comments, oldest first
// Endpoint: GET /api/posts/:postId/comments
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	result, err := h.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// CountComments returns the number of comments on a post
// Endpoint: GET /api/posts/:postId/comments/count
func (h *CommentHandler) CountComments(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	count, err := h.commentService.CountComments(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"count": count})
}

// UpdateComment edits a comment's content
// Endpoint: PUT /api/posts/:postId/comments/:commentId
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	var req models.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	comment, err := h.commentService.UpdateComment(c.Context(), postID, commentID, &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(comment)
}

// DeleteComment removes a comment
// Endpoint: DELETE /api/posts/:postId/comments/:commentId
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}
	commentID, err := uuid.FromString(c.Params("commentId"))
	if err != nil {
		return errors.HandleUUIDError(c, "commentId")
	}

	if err := h.commentService.DeleteComment(c.Context(), postID, commentID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
