package posts

import (
	"github.com/gofiber/fiber/v2"

	authjwt "github.com/Vnuja/YumScroll/internal/middleware/authjwt"
	platformconfig "github.com/Vnuja/YumScroll/internal/platform/config"
	"github.com/Vnuja/YumScroll/posts/handlers"
)

// PostsHandlers holds all the handlers this router needs
type PostsHandlers struct {
	PostHandler *handlers.PostHandler
}

// RegisterRoutes is the single entry point for setting up post routes
func RegisterRoutes(app *fiber.App, h *PostsHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/api/posts")

	group.Get("/", h.PostHandler.ListPosts)
	group.Post("/", authMiddleware, h.PostHandler.CreatePost)
	group.Get("/user/:userId", h.PostHandler.ListPostsByOwner)
	group.Get("/:postId", h.PostHandler.GetPost)
	group.Put("/:postId", authMiddleware, h.PostHandler.UpdatePost)
	group.Delete("/:postId", authMiddleware, h.PostHandler.DeletePost)
}
