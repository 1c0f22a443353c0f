package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Vnuja/YumScroll/comments"
	commentHandlers "github.com/Vnuja/YumScroll/comments/handlers"
	commentRepository "github.com/Vnuja/YumScroll/comments/repository"
	commentServices "github.com/Vnuja/YumScroll/comments/services"
	"github.com/Vnuja/YumScroll/internal/cache"
	"github.com/Vnuja/YumScroll/internal/database/postgres"
	"github.com/Vnuja/YumScroll/internal/middleware/requestid"
	platformconfig "github.com/Vnuja/YumScroll/internal/platform/config"
	"github.com/Vnuja/YumScroll/likes"
	likeHandlers "github.com/Vnuja/YumScroll/likes/handlers"
	likeRepository "github.com/Vnuja/YumScroll/likes/repository"
	likeServices "github.com/Vnuja/YumScroll/likes/services"
	"github.com/Vnuja/YumScroll/notifications"
	notificationHandlers "github.com/Vnuja/YumScroll/notifications/handlers"
	notificationRepository "github.com/Vnuja/YumScroll/notifications/repository"
	notificationServices "github.com/Vnuja/YumScroll/notifications/services"
	"github.com/Vnuja/YumScroll/posts"
	postHandlers "github.com/Vnuja/YumScroll/posts/handlers"
	postRepository "github.com/Vnuja/YumScroll/posts/repository"
	postServices "github.com/Vnuja/YumScroll/posts/services"
	"github.com/Vnuja/YumScroll/users"
	userHandlers "github.com/Vnuja/YumScroll/users/handlers"
	userRepository "github.com/Vnuja/YumScroll/users/repository"
	userServices "github.com/Vnuja/YumScroll/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// If a handler already wrote a response, don't override it.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	cacheConfig := &cache.CacheConfig{
		Enabled:         cfg.Cache.Enabled,
		TTL:             cfg.Cache.TTL,
		Prefix:          cfg.Cache.Prefix,
		Backend:         cfg.Cache.Backend,
		CleanupInterval: 5 * time.Minute,
		Redis: cache.RedisConfig{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			Database: cfg.Cache.Redis.Database,
			PoolSize: cfg.Cache.Redis.PoolSize,
		},
	}
	cacheBackend, err := cache.NewCache(cacheConfig)
	if err != nil {
		log.Fatalf("Failed to create cache backend: %v", err)
	}
	cacheService := cache.NewGenericCacheService(cacheBackend, cacheConfig)
	defer cacheService.Close()

	// Repositories
	userRepo := userRepository.NewPostgresUserRepository(pgClient)
	postRepo := postRepository.NewPostgresPostRepository(pgClient)
	likeRepo := likeRepository.NewPostgresLikeRepository(pgClient)
	commentRepo := commentRepository.NewPostgresCommentRepository(pgClient)
	notificationRepo := notificationRepository.NewPostgresNotificationRepository(pgClient)

	// Services. The notification service doubles as the dispatcher the
	// like and comment services fan out through.
	notificationService := notificationServices.NewNotificationService(notificationRepo)
	userService := userServices.NewUserService(userRepo)
	postService := postServices.NewPostService(postRepo, cacheService)
	likeService := likeServices.NewLikeService(likeRepo, postRepo, userService, notificationService)
	commentService := commentServices.NewCommentService(commentRepo, postRepo, userService, notificationService, cacheService)

	// Routes
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService),
	}, cfg)
	posts.RegisterRoutes(app, &posts.PostsHandlers{
		PostHandler: postHandlers.NewPostHandler(postService),
	}, cfg)
	likes.RegisterRoutes(app, &likes.LikesHandlers{
		LikeHandler: likeHandlers.NewLikeHandler(likeService),
	}, cfg)
	comments.RegisterRoutes(app, &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	}, cfg)
	notifications.RegisterRoutes(app, &notifications.NotificationsHandlers{
		NotificationHandler: notificationHandlers.NewNotificationHandler(notificationService),
	}, cfg)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
