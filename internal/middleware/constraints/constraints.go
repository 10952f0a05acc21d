// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package constraints

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
)

// RequireUUID is a Fiber middleware that ensures a path parameter is a valid UUID.
// If the parameter is not a valid UUID, it returns 404 Not Found (route doesn't match).
//
// Static routes like /my-posts must be registered BEFORE parameterized routes
// like /:postId to ensure correct route matching precedence.
func RequireUUID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paramValue := c.Params(param)
		if paramValue == "" {
			return c.Next()
		}
		if _, err := uuid.FromString(paramValue); err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}
