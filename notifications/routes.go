package notifications

import (
	"github.com/gofiber/fiber/v2"

	authjwt "github.com/Vnuja/YumScroll/internal/middleware/authjwt"
	platformconfig "github.com/Vnuja/YumScroll/internal/platform/config"
	"github.com/Vnuja/YumScroll/notifications/handlers"
)

// NotificationsHandlers holds all the handlers this router needs
type NotificationsHandlers struct {
	NotificationHandler *handlers.NotificationHandler
}

// RegisterRoutes is the single entry point for setting up notification routes.
// Every notification route is scoped to the acting user, so the whole
// group requires authentication.
func RegisterRoutes(app *fiber.App, h *NotificationsHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/api/notifications", authMiddleware)

	group.Get("/", h.NotificationHandler.ListNotifications)
	group.Get("/unread", h.NotificationHandler.ListUnread)
	group.Get("/unread/count", h.NotificationHandler.CountUnread)
	group.Put("/read-all", h.NotificationHandler.MarkAllRead)
	group.Put("/:notificationId/read", h.NotificationHandler.MarkRead)
	group.Delete("/:notificationId", h.NotificationHandler.DeleteNotification)
}
