// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
)

// PostFilter carries the store-level listing constraints
type PostFilter struct {
	Search      string
	Tag         string
	OwnerUserId *uuid.UUID
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create stores a new post
	Create(ctx context.Context, post *models.Post) error

	// FindByID retrieves a post by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)

	// Find retrieves posts matching the filter, sorted and paginated
	Find(ctx context.Context, filter PostFilter, sort string, limit, offset int64) ([]models.Post, error)

	// Count counts posts matching the filter
	Count(ctx context.Context, filter PostFilter) (int64, error)

	// UpdateFields updates specific fields on a post
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// AddLike adds the user to the likes set and bumps likeCount in one
	// conditional update, returning the updated count. Matched is false when
	// the user was already a member.
	AddLike(ctx context.Context, postID, userID uuid.UUID) (count int64, matched bool, err error)

	// RemoveLike removes the user from the likes set and drops likeCount in
	// one conditional update, returning the updated count. Matched is false
	// when the user was not a member.
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (count int64, matched bool, err error)

	// FloorLikeCount resets a negative likeCount back to zero
	FloorLikeCount(ctx context.Context, postID uuid.UUID) error

	// IncrementCommentCount adjusts the denormalized comment counter
	IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) error

	// Delete removes a post
	Delete(ctx context.Context, id uuid.UUID) error

	// Totals aggregates post count and like sum across the collection
	Totals(ctx context.Context) (*models.DashboardTotals, error)

	// TagCounts aggregates per-tag post frequencies, most frequent first
	TagCounts(ctx context.Context) ([]models.TagCount, error)

	// WithTransaction executes fn within a store transaction
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
