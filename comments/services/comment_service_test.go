// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tahia-tahi/bright-tech-server/comments/errors"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
	"github.com/tahia-tahi/bright-tech-server/comments/services/mocks"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	postmodels "github.com/tahia-tahi/bright-tech-server/posts/models"
	postservices "github.com/tahia-tahi/bright-tech-server/posts/services"
)

func newTestUser() *types.UserContext {
	return &types.UserContext{
		UserID:      uuid.Must(uuid.NewV4()),
		Email:       "commenter@example.com",
		DisplayName: "Commenter",
		Role:        types.UserRole,
	}
}

func TestCreateCommentIncrementsCounter(t *testing.T) {
	commentRepo := new(mocks.MockCommentRepository)
	postRepo := new(postservices.MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	user := newTestUser()
	postID := uuid.Must(uuid.NewV4())

	postRepo.On("FindByID", mock.Anything, postID).
		Return(&postmodels.Post{ObjectId: postID}, nil)

	var created *models.Comment
	commentRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Comment)
		}).
		Return(nil)
	postRepo.On("IncrementCommentCount", mock.Anything, postID, 1).Return(nil)

	result, err := service.CreateComment(context.Background(), postID, &models.CreateCommentRequest{Text: "nice post"}, user)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.CommentId)

	require.NotNil(t, created)
	assert.Equal(t, postID, created.PostId)
	assert.Equal(t, user.UserID, created.OwnerUserId)
	assert.Equal(t, "nice post", created.Text)
	assert.NotZero(t, created.CreatedDate)

	postRepo.AssertCalled(t, "IncrementCommentCount", mock.Anything, postID, 1)
}

func TestCreateCommentMissingPost(t *testing.T) {
	commentRepo := new(mocks.MockCommentRepository)
	postRepo := new(postservices.MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	postID := uuid.Must(uuid.NewV4())
	postRepo.On("FindByID", mock.Anything, postID).Return(nil, interfaces.ErrNoDocuments)

	_, err := service.CreateComment(context.Background(), postID, &models.CreateCommentRequest{Text: "hello"}, newTestUser())
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentRequiresUser(t *testing.T) {
	service := NewCommentService(new(mocks.MockCommentRepository), new(postservices.MockPostRepository))

	_, err := service.CreateComment(context.Background(), uuid.Must(uuid.NewV4()), &models.CreateCommentRequest{Text: "x"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserContext)
}

func TestCreateCommentRollsBackOnCounterFailure(t *testing.T) {
	commentRepo := new(mocks.MockCommentRepository)
	postRepo := new(postservices.MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	postID := uuid.Must(uuid.NewV4())
	postRepo.On("FindByID", mock.Anything, postID).
		Return(&postmodels.Post{ObjectId: postID}, nil)

	commentRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	commentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	postRepo.On("IncrementCommentCount", mock.Anything, postID, 1).
		Return(assert.AnError)

	_, err := service.CreateComment(context.Background(), postID, &models.CreateCommentRequest{Text: "x"}, newTestUser())
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)
}

func TestQueryCommentsNewestFirst(t *testing.T) {
	commentRepo := new(mocks.MockCommentRepository)
	postRepo := new(postservices.MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	postID := uuid.Must(uuid.NewV4())

	stored := []models.Comment{
		{ObjectId: uuid.Must(uuid.NewV4()), PostId: postID, Text: "newest", CreatedDate: 200},
		{ObjectId: uuid.Must(uuid.NewV4()), PostId: postID, Text: "oldest", CreatedDate: 100},
	}
	commentRepo.On("FindByPostID", mock.Anything, postID).Return(stored, nil)

	result, err := service.QueryComments(context.Background(), postID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.Comments, 2)
	assert.Equal(t, "newest", result.Comments[0].Text)
	assert.Equal(t, "oldest", result.Comments[1].Text)
}

func TestQueryCommentsDeletedPostAnswersEmptyList(t *testing.T) {
	commentRepo := new(mocks.MockCommentRepository)
	postRepo := new(postservices.MockPostRepository)
	service := NewCommentService(commentRepo, postRepo)

	// The cascade removed the post and its comments; the lookup is served
	// from the comment collection alone and answers an empty list, not 404.
	postID := uuid.Must(uuid.NewV4())
	commentRepo.On("FindByPostID", mock.Anything, postID).Return([]models.Comment{}, nil)

	result, err := service.QueryComments(context.Background(), postID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Comments)

	postRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
