package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	postsErrors "github.com/Vnuja/YumScroll/posts/errors"
	usersErrors "github.com/Vnuja/YumScroll/users/errors"
)

// Like service specific errors
var (
	ErrLikeNotFound      = errors.New("like not found")
	ErrInvalidLikeData   = errors.New("invalid like data")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeLikeNotFound   = "LIKE_NOT_FOUND"
	CodePostNotFound   = "POST_NOT_FOUND"
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidUUID    = "INVALID_UUID"
	CodeDatabaseError  = "DATABASE_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP
// responses. Toggles touch the posts store, so post errors surface here
// too.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, postsErrors.ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodePostNotFound,
			Message: "Post not found",
			Details: err.Error(),
		})
	case errors.Is(err, usersErrors.ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrLikeNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeLikeNotFound,
			Message: "Like not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidLikeData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidRequest,
			Message: "Invalid like data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseError,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleUserContextError returns an error for missing or invalid user context
func HandleUserContextError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}

// HandleUUIDError handles UUID parsing errors with 400 Bad Request
func HandleUUIDError(c *fiber.Ctx, fieldName string) error {
	message := fmt.Sprintf("Invalid %s format", fieldName)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidUUID,
		Message: message,
		Details: message,
	})
}
