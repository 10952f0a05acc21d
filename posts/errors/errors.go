// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Post service specific errors
var (
	ErrPostNotFound          = errors.New("post not found")
	ErrPostOwnershipRequired = errors.New("post ownership required")
	ErrInvalidUserContext    = errors.New("invalid user context")
	ErrDatabaseOperation     = errors.New("database operation failed")
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrPostNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Post not found",
		})
	case errors.Is(err, ErrPostOwnershipRequired):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Message: "Post ownership required",
		})
	case errors.Is(err, ErrInvalidUserContext):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Unauthorized access",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "An unexpected error occurred",
		})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
	})
}

// HandleUserContextError handles missing user context with 401 Unauthorized
func HandleUserContextError(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Message: "Unauthorized access",
	})
}

// HandleInvalidRequestError handles malformed request bodies with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
	})
}
