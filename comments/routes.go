// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package comments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tahia-tahi/bright-tech-server/comments/handlers"
	authjwt "github.com/tahia-tahi/bright-tech-server/internal/middleware/authjwt"
	constraints "github.com/tahia-tahi/bright-tech-server/internal/middleware/constraints"
	platformconfig "github.com/tahia-tahi/bright-tech-server/internal/platform/config"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
)

// CommentsHandlers holds all the handlers this router needs.
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes is the single entry point for setting up comment routes.
// Comments are mounted under the /posts prefix: writing requires a verified
// bearer token, reading is public.
func RegisterRoutes(app *fiber.App, handlers *CommentsHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey:   cfg.JWT.PublicKey,
		ClaimKey:    cfg.JWT.ClaimKey,
		UserCtxName: types.UserCtxName,
	})

	group := app.Group("/posts")

	group.Get("/comments/:postId", constraints.RequireUUID("postId"), handlers.CommentHandler.QueryComments)
	group.Post("/comment/:postId", jwtMiddleware, constraints.RequireUUID("postId"), handlers.CommentHandler.CreateComment)
}
