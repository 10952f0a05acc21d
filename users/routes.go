// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"github.com/gofiber/fiber/v2"
	authjwt "github.com/tahia-tahi/bright-tech-server/internal/middleware/authjwt"
	platformconfig "github.com/tahia-tahi/bright-tech-server/internal/platform/config"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes.
func RegisterRoutes(app *fiber.App, handlers *UsersHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey:   cfg.JWT.PublicKey,
		ClaimKey:    cfg.JWT.ClaimKey,
		UserCtxName: types.UserCtxName,
	})

	group := app.Group("/posts")

	group.Post("/user/sync", jwtMiddleware, handlers.UserHandler.SyncUser)
}
