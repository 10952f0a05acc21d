// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
	"github.com/tahia-tahi/bright-tech-server/posts/repository"
)

// MockPostRepository is a mock implementation of PostRepository for testing
type MockPostRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

// Find mocks the Find method
func (m *MockPostRepository) Find(ctx context.Context, filter repository.PostFilter, sort string, limit, offset int64) ([]models.Post, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

// Count mocks the Count method
func (m *MockPostRepository) Count(ctx context.Context, filter repository.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// UpdateFields mocks the UpdateFields method
func (m *MockPostRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

// AddLike mocks the AddLike method
func (m *MockPostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) (int64, bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// RemoveLike mocks the RemoveLike method
func (m *MockPostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// FloorLikeCount mocks the FloorLikeCount method
func (m *MockPostRepository) FloorLikeCount(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// IncrementCommentCount mocks the IncrementCommentCount method
func (m *MockPostRepository) IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Totals mocks the Totals method
func (m *MockPostRepository) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardTotals), args.Error(1)
}

// TagCounts mocks the TagCounts method
func (m *MockPostRepository) TagCounts(ctx context.Context) ([]models.TagCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TagCount), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockPostRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Get(0).(error)
	}
	// Execute the function if no error is expected
	if fn != nil {
		return fn(ctx)
	}
	return nil
}
