// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package mocks

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
)

// MockCommentRepository is a mock implementation of CommentRepository for testing
type MockCommentRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// FindByPostID mocks the FindByPostID method
func (m *MockCommentRepository) FindByPostID(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// CountAll mocks the CountAll method
func (m *MockCommentRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteByPostID mocks the DeleteByPostID method
func (m *MockCommentRepository) DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// WithTransaction mocks the WithTransaction method
func (m *MockCommentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Get(0).(error)
	}
	if fn != nil {
		return fn(ctx)
	}
	return nil
}

// EnsureIndexes mocks the EnsureIndexes method
func (m *MockCommentRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
