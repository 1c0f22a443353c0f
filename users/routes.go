package users

import (
	"github.com/gofiber/fiber/v2"

	authjwt "github.com/Vnuja/YumScroll/internal/middleware/authjwt"
	platformconfig "github.com/Vnuja/YumScroll/internal/platform/config"
	"github.com/Vnuja/YumScroll/users/handlers"
)

// UsersHandlers holds all the handlers this router needs
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes
func RegisterRoutes(app *fiber.App, h *UsersHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/api/users")

	group.Get("/profile", authMiddleware, h.UserHandler.GetProfile)
	group.Post("/profile", authMiddleware, h.UserHandler.CreateProfile)
	group.Put("/profile", authMiddleware, h.UserHandler.UpdateProfile)
	group.Get("/:userId", h.UserHandler.GetUser)
}
