// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package posts

import (
	"github.com/gofiber/fiber/v2"
	authjwt "github.com/tahia-tahi/bright-tech-server/internal/middleware/authjwt"
	constraints "github.com/tahia-tahi/bright-tech-server/internal/middleware/constraints"
	platformconfig "github.com/tahia-tahi/bright-tech-server/internal/platform/config"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/posts/handlers"
)

// PostsHandlers holds all the handlers this router needs.
type PostsHandlers struct {
	PostHandler *handlers.PostHandler
}

// RegisterRoutes is the single entry point for setting up posts routes.
// The public listing stays outside the JWT middleware; everything else
// requires a verified bearer token.
func RegisterRoutes(app *fiber.App, handlers *PostsHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey:   cfg.JWT.PublicKey,
		ClaimKey:    cfg.JWT.ClaimKey,
		UserCtxName: types.UserCtxName,
	})

	group := app.Group("/posts")

	// Public listing
	group.Get("/", handlers.PostHandler.QueryPosts)

	// --- Authenticated routes ---
	userGroup := group.Group("", jwtMiddleware)

	userGroup.Post("/", handlers.PostHandler.CreatePost)
	userGroup.Get("/dashboard/overview", handlers.PostHandler.GetDashboard)

	// Static routes must precede the parameterized ones below.
	userGroup.Get("/my-posts", handlers.PostHandler.QueryMyPosts)

	userGroup.Patch("/like/:postId", constraints.RequireUUID("postId"), handlers.PostHandler.ToggleLike)

	userGroup.Get("/:postId", constraints.RequireUUID("postId"), handlers.PostHandler.GetPost)
	userGroup.Put("/:postId", constraints.RequireUUID("postId"), handlers.PostHandler.UpdatePost)
	userGroup.Delete("/:postId", constraints.RequireUUID("postId"), handlers.PostHandler.DeletePost)
}
