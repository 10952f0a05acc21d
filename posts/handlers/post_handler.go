// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/gorilla/schema"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/posts/errors"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
	"github.com/tahia-tahi/bright-tech-server/posts/services"
	"github.com/tahia-tahi/bright-tech-server/posts/validation"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// PostHandler handles all post-related HTTP requests
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler creates a new PostHandler with injected dependencies
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// decodeQueryFilter decodes the request query string into a listing filter
func decodeQueryFilter(c *fiber.Ctx) (*models.PostQueryFilter, error) {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	filter := &models.PostQueryFilter{}
	if err := queryDecoder.Decode(filter, values); err != nil {
		return nil, err
	}
	return filter, nil
}

// CreatePost handles post creation
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreatePostRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.postService.CreatePost(c.Context(), &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// QueryPosts handles the public post listing with search, tag filtering,
// sorting and pagination
func (h *PostHandler) QueryPosts(c *fiber.Ctx) error {
	filter, err := decodeQueryFilter(c)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid query parameters")
	}

	if err := validation.ValidatePostQueryFilter(filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	// The listing is public; the liked flag is only meaningful for
	// authenticated callers.
	var caller *uuid.UUID
	if user, ok := c.Locals(types.UserCtxName).(types.UserContext); ok {
		caller = &user.UserID
	}

	result, err := h.postService.QueryPosts(c.Context(), filter, caller)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}

// QueryMyPosts handles listing the authenticated user's own posts
func (h *PostHandler) QueryMyPosts(c *fiber.Ctx) error {
	filter, err := decodeQueryFilter(c)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid query parameters")
	}

	if err := validation.ValidatePostQueryFilter(filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.postService.QueryMyPosts(c.Context(), filter, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}

// GetPost handles retrieving a single post
// Note: UUID validation is handled by constraints.RequireUUID middleware
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.postService.GetPost(c.Context(), postID, &user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}

// UpdatePost handles editing a post
func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	var req models.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdatePostRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	if err := h.postService.UpdatePost(c.Context(), postID, &req, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// DeletePost handles deleting a post along with its comments
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	if err := h.postService.DeletePost(c.Context(), postID, &user); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ToggleLike handles flipping the caller's like on a post
func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.postService.ToggleLike(c.Context(), postID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}

// GetDashboard handles the aggregate overview
func (h *PostHandler) GetDashboard(c *fiber.Ctx) error {
	if _, ok := c.Locals(types.UserCtxName).(types.UserContext); !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.postService.GetDashboard(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}
