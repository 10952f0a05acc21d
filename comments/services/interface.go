// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	// CreateComment appends a comment to a post and bumps the post's
	// comment counter in the same transaction
	CreateComment(ctx context.Context, postID uuid.UUID, req *models.CreateCommentRequest, user *types.UserContext) (*models.CreateCommentResponse, error)

	// QueryComments lists all comments of a post, newest first
	QueryComments(ctx context.Context, postID uuid.UUID) (*models.CommentsListResponse, error)
}
