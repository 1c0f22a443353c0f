package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/users/errors"
	"github.com/Vnuja/YumScroll/users/models"
	"github.com/Vnuja/YumScroll/users/services"
)

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser returns a user's public profile
// Endpoint: GET /api/users/:userId
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return errors.HandleUUIDError(c, "userId")
	}

	user, err := h.userService.GetUser(c.Context(), userID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(user.ToResponse())
}

// GetProfile returns the acting user's own profile
// Endpoint: GET /api/users/profile
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	profile, err := h.userService.GetUser(c.Context(), user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(profile)
}

// CreateProfile provisions the acting user's profile from the token identity
// Endpoint: POST /api/users/profile
func (h *UserHandler) CreateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	var req models.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	profile, err := h.userService.CreateProfile(c.Context(), &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(profile)
}

// UpdateProfile updates the acting user's own profile
// Endpoint: PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	updated, err := h.userService.UpdateProfile(c.Context(), &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(updated)
}
