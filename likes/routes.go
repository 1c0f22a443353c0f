package likes

import (
	"github.com/gofiber/fiber/v2"

	authjwt "github.com/Vnuja/YumScroll/internal/middleware/authjwt"
	platformconfig "github.com/Vnuja/YumScroll/internal/platform/config"
	"github.com/Vnuja/YumScroll/likes/handlers"
)

// LikesHandlers holds all the handlers this router needs
type LikesHandlers struct {
	LikeHandler *handlers.LikeHandler
}

// RegisterRoutes is the single entry point for setting up like routes
func RegisterRoutes(app *fiber.App, h *LikesHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/api/posts/:postId/likes")

	group.Post("/toggle", authMiddleware, h.LikeHandler.ToggleLike)
	group.Get("/check", authMiddleware, h.LikeHandler.CheckLike)
	group.Get("/count", h.LikeHandler.CountLikes)
}
