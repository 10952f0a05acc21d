// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/comments/errors"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
	"github.com/tahia-tahi/bright-tech-server/comments/services"
	"github.com/tahia-tahi/bright-tech-server/comments/validation"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
)

// CommentHandler handles all comment-related HTTP requests
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment handles appending a comment to a post
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCommentRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.commentService.CreateComment(c.Context(), postID, &req, &user)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// QueryComments handles listing the comments of a post, newest first
func (h *CommentHandler) QueryComments(c *fiber.Ctx) error {
	postID, err := uuid.FromString(c.Params("postId"))
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrPostNotFound)
	}

	result, err := h.commentService.QueryComments(c.Context(), postID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(result)
}
