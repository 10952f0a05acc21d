// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, handler fiber.Handler) (*http.Response, ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"post not found", ErrPostNotFound, http.StatusNotFound, "Post not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrPostNotFound), http.StatusNotFound, "Post not found"},
		{"ownership required", ErrPostOwnershipRequired, http.StatusForbidden, "Post ownership required"},
		{"invalid user context", ErrInvalidUserContext, http.StatusUnauthorized, "Unauthorized access"},
		{"database failure", fmt.Errorf("%w: timeout", ErrDatabaseOperation), http.StatusInternalServerError, "An unexpected error occurred"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := performRequest(t, func(c *fiber.Ctx) error {
				return HandleServiceError(c, tt.err)
			})

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedMsg, body.Message)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	resp, body := performRequest(t, func(c *fiber.Ctx) error {
		return HandleValidationError(c, "title is required")
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "title is required", body.Message)
}

func TestHandleUserContextError(t *testing.T) {
	resp, body := performRequest(t, HandleUserContextError)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "Unauthorized access", body.Message)
}
