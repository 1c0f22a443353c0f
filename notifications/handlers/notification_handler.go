package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/Vnuja/YumScroll/internal/types"
	"github.com/Vnuja/YumScroll/notifications/errors"
	"github.com/Vnuja/YumScroll/notifications/services"
)

// NotificationHandler handles all notification-related HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler with injected dependencies
func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications returns the acting user's notifications, newest first
// Endpoint: GET /api/notifications
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.notificationService.ListNotifications(c.Context(), &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// ListUnread returns the acting user's unread notifications, newest first
// Endpoint: GET /api/notifications/unread
func (h *NotificationHandler) ListUnread(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	result, err := h.notificationService.ListUnread(c.Context(), &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// CountUnread returns the acting user's unread notification count
// Endpoint: GET /api/notifications/unread/count
func (h *NotificationHandler) CountUnread(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	count, err := h.notificationService.CountUnread(c.Context(), &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"count": count})
}

// MarkRead marks one notification as read
// Endpoint: PUT /api/notifications/:notificationId/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	notificationID, err := uuid.FromString(c.Params("notificationId"))
	if err != nil {
		return errors.HandleUUIDError(c, "notificationId")
	}

	if err := h.notificationService.MarkRead(c.Context(), notificationID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// MarkAllRead marks all of the acting user's notifications as read
// Endpoint: PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	if err := h.notificationService.MarkAllRead(c.Context(), &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// DeleteNotification removes one of the acting user's notifications
// Endpoint: DELETE /api/notifications/:notificationId
func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c, "Invalid user context")
	}

	notificationID, err := uuid.FromString(c.Params("notificationId"))
	if err != nil {
		return errors.HandleUUIDError(c, "notificationId")
	}

	if err := h.notificationService.DeleteNotification(c.Context(), notificationID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
