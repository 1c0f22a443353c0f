package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/posts/errors"
	"github.com/Vnuja/YumScroll/posts/models"
	"github.com/Vnuja/YumScroll/posts/services"
)

// PostHandler handles all post-related HTTP requests
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler with injected dependencies
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost creates a new post owned by the acting user
// Endpoint: POST /api/posts
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	post, err := h.postService.CreatePost(c.Context(), &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(post)
}

// GetPost returns a single post
// Endpoint: GET /api/posts/:postId
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	post, err := h.postService.GetPost(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(post)
}

// ListPosts returns all posts, newest first
// Endpoint: GET /api/posts
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	result, err := h.postService.ListPosts(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// ListPostsByOwner returns a user's posts, newest first
// Endpoint: GET /api/posts/user/:userId
func (h *PostHandler) ListPostsByOwner(c *fiber.Ctx) error {
	ownerID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return errors.HandleUUIDError(c, "userId")
	}

	result, err := h.postService.ListPostsByOwner(c.Context(), ownerID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// UpdatePost updates a post owned by the acting user
// Endpoint: PUT /api/posts/:postId
func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	var req models.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	post, err := h.postService.UpdatePost(c.Context(), postID, &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(post)
}

// DeletePost removes a post owned by the acting user
// Endpoint: DELETE /api/posts/:postId
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleUUIDError(c, "postId")
	}

	if err := h.postService.DeletePost(c.Context(), postID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
