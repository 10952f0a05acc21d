// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/users/errors"
	"github.com/tahia-tahi/bright-tech-server/users/services"
)

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// SyncUser handles the idempotent identity sync
func (h *UserHandler) SyncUser(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.userService.SyncUser(c.Context(), &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}
