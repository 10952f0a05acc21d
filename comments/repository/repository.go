// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create stores a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// FindByPostID retrieves all comments for a post, newest first
	FindByPostID(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)

	// CountAll counts every stored comment
	CountAll(ctx context.Context) (int64, error)

	// DeleteByPostID removes all comments referencing the post
	DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error)

	// WithTransaction executes fn within a store transaction
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// EnsureIndexes creates the postId lookup index
	EnsureIndexes(ctx context.Context) error
}
