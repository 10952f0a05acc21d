// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
)

// PostService defines the interface for post business logic
type PostService interface {
	// CreatePost creates a new post owned by the authenticated user
	CreatePost(ctx context.Context, req *models.CreatePostRequest, user *types.UserContext) (*models.CreatePostResponse, error)

	// QueryPosts lists posts with search, tag filtering, sorting and pagination
	QueryPosts(ctx context.Context, filter *models.PostQueryFilter, caller *uuid.UUID) (*models.PostsListResponse, error)

	// QueryMyPosts lists posts owned by the authenticated user
	QueryMyPosts(ctx context.Context, filter *models.PostQueryFilter, user *types.UserContext) (*models.PostsListResponse, error)

	// GetPost retrieves a single post with the caller's liked flag
	GetPost(ctx context.Context, postID uuid.UUID, caller *uuid.UUID) (*models.PostResponse, error)

	// UpdatePost edits a post; the caller must be the author
	UpdatePost(ctx context.Context, postID uuid.UUID, req *models.UpdatePostRequest, user *types.UserContext) error

	// DeletePost removes a post and cascades to its comments; the caller
	// must be the author
	DeletePost(ctx context.Context, postID uuid.UUID, user *types.UserContext) error

	// ToggleLike flips the caller's like membership on a post
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResponse, error)

	// GetDashboard computes the aggregate overview fresh per request
	GetDashboard(ctx context.Context) (*models.DashboardResponse, error)
}
