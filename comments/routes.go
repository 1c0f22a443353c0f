package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vnuja/YumScroll/comments/handlers"
	authjwt "github.com/Vnuja/YumScroll/internal/middleware/authjwt"
	platformconfig "github.com/Vnuja/YumScroll/internal/platform/config"
)

// CommentsHandlers holds all the handlers this router needs
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes is the single entry point for setting up comment routes
func RegisterRoutes(app *fiber.App, h *CommentsHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})

	group := app.Group("/api/posts/:postId/comments")

	group.Get("/", h.CommentHandler.ListComments)
	group.Get("/count", h.CommentHandler.CountComments)
	group.Post("/", authMiddleware, h.CommentHandler.AddComment)
	group.Put("/:commentId", authMiddleware, h.CommentHandler.UpdateComment)
	group.Delete("/:commentId", authMiddleware, h.CommentHandler.DeleteComment)
}
