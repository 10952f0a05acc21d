// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	commentsrepo "github.com/tahia-tahi/bright-tech-server/comments/repository"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/internal/pkg/log"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/internal/utils"
	apperrors "github.com/tahia-tahi/bright-tech-server/posts/errors"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
	"github.com/tahia-tahi/bright-tech-server/posts/repository"
)

// postService implements PostService
type postService struct {
	postRepo    repository.PostRepository
	commentRepo commentsrepo.CommentRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo repository.PostRepository, commentRepo commentsrepo.CommentRepository) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new post owned by the authenticated user
func (s *postService) CreatePost(ctx context.Context, req *models.CreatePostRequest, user *types.UserContext) (*models.CreatePostResponse, error) {
	if user == nil || user.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidUserContext
	}

	postID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate post id: %w", err)
	}

	post := &models.Post{
		ObjectId:         postID,
		Title:            req.Title,
		Body:             req.Body,
		Tags:             models.NormalizeTags(req.Tags),
		Image:            req.Image,
		OwnerUserId:      user.UserID,
		OwnerEmail:       user.Email,
		OwnerDisplayName: user.DisplayName,
		OwnerAvatar:      user.Avatar,
		LikeCount:        0,
		CommentCount:     0,
		Likes:            []uuid.UUID{},
		CreatedDate:      utils.UTCNowUnix(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		log.ErrorWithContext(ctx, "failed to create post: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	return &models.CreatePostResponse{
		Success: true,
		PostId:  post.ObjectId.String(),
	}, nil
}

// QueryPosts lists posts with search, tag filtering, sorting and pagination
func (s *postService) QueryPosts(ctx context.Context, filter *models.PostQueryFilter, caller *uuid.UUID) (*models.PostsListResponse, error) {
	return s.queryPosts(ctx, filter, repository.PostFilter{
		Search: filter.Search,
		Tag:    filter.Tag,
	}, caller)
}

// QueryMyPosts lists posts owned by the authenticated user
func (s *postService) QueryMyPosts(ctx context.Context, filter *models.PostQueryFilter, user *types.UserContext) (*models.PostsListResponse, error) {
	if user == nil || user.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidUserContext
	}

	owner := user.UserID
	return s.queryPosts(ctx, filter, repository.PostFilter{
		Search:      filter.Search,
		Tag:         filter.Tag,
		OwnerUserId: &owner,
	}, &owner)
}

func (s *postService) queryPosts(ctx context.Context, filter *models.PostQueryFilter, storeFilter repository.PostFilter, caller *uuid.UUID) (*models.PostsListResponse, error) {
	filter.Normalize()

	offset := int64(filter.Page-1) * int64(filter.Limit)

	posts, err := s.postRepo.Find(ctx, storeFilter, filter.Sort, int64(filter.Limit), offset)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to query posts: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	total, err := s.postRepo.Count(ctx, storeFilter)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to count posts: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, models.ToPostResponse(&posts[i], caller))
	}

	return &models.PostsListResponse{
		Success: true,
		Total:   total,
		Page:    filter.Page,
		Posts:   responses,
	}, nil
}

// GetPost retrieves a single post with the caller's liked flag
func (s *postService) GetPost(ctx context.Context, postID uuid.UUID, caller *uuid.UUID) (*models.PostResponse, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	response := models.ToPostResponse(post, caller)
	return &response, nil
}

// UpdatePost edits a post. Existence is checked before ownership so a
// missing post is always reported as 404, never 403.
func (s *postService) UpdatePost(ctx context.Context, postID uuid.UUID, req *models.UpdatePostRequest, user *types.UserContext) error {
	if user == nil || user.UserID == uuid.Nil {
		return apperrors.ErrInvalidUserContext
	}

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.OwnerUserId != user.UserID {
		return apperrors.ErrPostOwnershipRequired
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"body":        req.Body,
		"lastUpdated": utils.UTCNowUnix(),
	}
	if req.Tags != nil {
		fields["tags"] = models.NormalizeTags(*req.Tags)
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	if err := s.postRepo.UpdateFields(ctx, postID, fields); err != nil {
		log.ErrorWithContext(ctx, "failed to update post %s: %v", postID, err)
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	return nil
}

// DeletePost removes a post and all its comments inside one transaction
func (s *postService) DeletePost(ctx context.Context, postID uuid.UUID, user *types.UserContext) error {
	if user == nil || user.UserID == uuid.Nil {
		return apperrors.ErrInvalidUserContext
	}

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.OwnerUserId != user.UserID {
		return apperrors.ErrPostOwnershipRequired
	}

	err = s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.commentRepo.DeleteByPostID(txCtx, postID); err != nil {
			return err
		}
		return s.postRepo.Delete(txCtx, postID)
	})
	if err != nil {
		log.ErrorWithContext(ctx, "failed to delete post %s: %v", postID, err)
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	return nil
}

// ToggleLike flips the caller's like membership on a post. The membership
// test lives in the update filter, so the likes set and likeCount always
// move together in one store operation.
func (s *postService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResponse, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	count, removed, err := s.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to remove like on post %s: %v", postID, err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	liked := false
	if !removed {
		count, liked, err = s.postRepo.AddLike(ctx, postID, userID)
		if err != nil {
			log.ErrorWithContext(ctx, "failed to add like on post %s: %v", postID, err)
			return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
		}
	}

	// Guard against pre-existing counter drift below zero.
	if err := s.postRepo.FloorLikeCount(ctx, postID); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	if count < 0 {
		count = 0
	}

	// Neither side matched: a concurrent toggle interleaved between the two
	// conditional updates. Read the stored state instead of guessing.
	if !removed && !liked {
		post, err := s.findPost(ctx, postID)
		if err != nil {
			return nil, err
		}
		liked = post.LikedBy(userID)
		count = post.LikeCount
	}

	return &models.LikeResponse{
		Success:   true,
		Liked:     liked,
		LikeCount: count,
	}, nil
}

// GetDashboard computes the aggregate overview fresh per request
func (s *postService) GetDashboard(ctx context.Context) (*models.DashboardResponse, error) {
	totals, err := s.postRepo.Totals(ctx)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to aggregate post totals: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	totalComments, err := s.commentRepo.CountAll(ctx)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to count comments: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	tags, err := s.postRepo.TagCounts(ctx)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to aggregate tag counts: %v", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	return &models.DashboardResponse{
		Success:       true,
		TotalPosts:    totals.TotalPosts,
		TotalLikes:    totals.TotalLikes,
		TotalComments: totalComments,
		Tags:          tags,
	}, nil
}

// findPost loads a post, translating the store's no-documents error into
// the domain not-found error.
func (s *postService) findPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoDocuments) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return post, nil
}
