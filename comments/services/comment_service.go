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
	apperrors "github.com/tahia-tahi/bright-tech-server/comments/errors"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
	"github.com/tahia-tahi/bright-tech-server/comments/repository"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/internal/pkg/log"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/internal/utils"
	postsrepo "github.com/tahia-tahi/bright-tech-server/posts/repository"
)

// commentService implements CommentService
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    postsrepo.PostRepository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository, postRepo postsrepo.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment appends a comment to a post. The insert and the post's
// counter increment commit or fail together.
func (s *commentService) CreateComment(ctx context.Context, postID uuid.UUID, req *models.CreateCommentRequest, user *types.UserContext) (*models.CreateCommentResponse, error) {
	if user == nil || user.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidUserContext
	}

	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	commentID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate comment id: %w", err)
	}

	comment := &models.Comment{
		ObjectId:         commentID,
		PostId:           postID,
		OwnerUserId:      user.UserID,
		OwnerEmail:       user.Email,
		OwnerDisplayName: user.DisplayName,
		OwnerAvatar:      user.Avatar,
		Text:             req.Text,
		CreatedDate:      utils.UTCNowUnix(),
	}

	err = s.commentRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}
		return s.postRepo.IncrementCommentCount(txCtx, postID, 1)
	})
	if err != nil {
		log.ErrorWithContext(ctx, "failed to create comment on post %s: %v", postID, err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	return &models.CreateCommentResponse{
		Success:   true,
		CommentId: comment.ObjectId.String(),
	}, nil
}

// QueryComments lists all comments of a post, newest first. The post itself
// is not consulted: after a post delete the lookup answers an empty list,
// not a 404.
func (s *commentService) QueryComments(ctx context.Context, postID uuid.UUID) (*models.CommentsListResponse, error) {
	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to query comments for post %s: %v", postID, err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, models.ToCommentResponse(&comments[i]))
	}

	return &models.CommentsListResponse{
		Success:  true,
		Comments: responses,
	}, nil
}

func (s *commentService) ensurePostExists(ctx context.Context, postID uuid.UUID) error {
	_, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoDocuments) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return nil
}
