// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/tahia-tahi/bright-tech-server/comments"
	commentHandlers "github.com/tahia-tahi/bright-tech-server/comments/handlers"
	commentRepository "github.com/tahia-tahi/bright-tech-server/comments/repository"
	commentServices "github.com/tahia-tahi/bright-tech-server/comments/services"
	dbi "github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/internal/database/mongodb"
	"github.com/tahia-tahi/bright-tech-server/internal/middleware/requestid"
	"github.com/tahia-tahi/bright-tech-server/internal/pkg/log"
	platformconfig "github.com/tahia-tahi/bright-tech-server/internal/platform/config"
	"github.com/tahia-tahi/bright-tech-server/posts"
	postHandlers "github.com/tahia-tahi/bright-tech-server/posts/handlers"
	postRepository "github.com/tahia-tahi/bright-tech-server/posts/repository"
	postServices "github.com/tahia-tahi/bright-tech-server/posts/services"
	"github.com/tahia-tahi/bright-tech-server/users"
	userHandlers "github.com/tahia-tahi/bright-tech-server/users/handlers"
	userRepository "github.com/tahia-tahi/bright-tech-server/users/repository"
	userServices "github.com/tahia-tahi/bright-tech-server/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load platform config: %v", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// If response already set by handler, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigin,
		AllowCredentials: false,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()

	mongoConfig := &dbi.MongoDBConfig{
		Host:           cfg.Database.MongoDB.Host,
		Port:           cfg.Database.MongoDB.Port,
		Username:       cfg.Database.MongoDB.Username,
		Password:       cfg.Database.MongoDB.Password,
		AuthDatabase:   cfg.Database.MongoDB.AuthDatabase,
		ReplicaSet:     cfg.Database.MongoDB.ReplicaSet,
		SSL:            cfg.Database.MongoDB.SSL,
		MaxPoolSize:    cfg.Database.MongoDB.MaxPoolSize,
		MinPoolSize:    cfg.Database.MongoDB.MinPoolSize,
		ConnectTimeout: int(cfg.Database.MongoDB.ConnectTimeout.Seconds()),
		SocketTimeout:  int(cfg.Database.MongoDB.SocketTimeout.Seconds()),
	}
	store, err := mongodb.NewMongoRepository(ctx, mongoConfig, cfg.Database.MongoDB.Database)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}

	// Repositories share the one store client.
	postRepo := postRepository.NewMongoPostRepository(store)
	commentRepo := commentRepository.NewMongoCommentRepository(store)
	userRepo := userRepository.NewMongoUserRepository(store)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Error("Failed to ensure user indexes: %v", err)
		os.Exit(1)
	}
	if err := commentRepo.EnsureIndexes(ctx); err != nil {
		log.Error("Failed to ensure comment indexes: %v", err)
		os.Exit(1)
	}

	postService := postServices.NewPostService(postRepo, commentRepo)
	commentService := commentServices.NewCommentService(commentRepo, postRepo)
	userService := userServices.NewUserService(userRepo)

	postsRouterHandlers := &posts.PostsHandlers{
		PostHandler: postHandlers.NewPostHandler(postService),
	}
	commentsRouterHandlers := &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	}
	usersRouterHandlers := &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService),
	}

	posts.RegisterRoutes(app, postsRouterHandlers, cfg)
	comments.RegisterRoutes(app, commentsRouterHandlers, cfg)
	users.RegisterRoutes(app, usersRouterHandlers, cfg)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := <-store.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "store unreachable",
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
		})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		log.Info("Server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("Server shutdown failed: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Error("Store close failed: %v", err)
	}
}
