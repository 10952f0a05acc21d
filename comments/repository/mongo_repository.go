// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/comments/models"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"go.mongodb.org/mongo-driver/bson"
)

const commentCollectionName = "comments"

// MongoCommentRepository implements CommentRepository on the document store
type MongoCommentRepository struct {
	base interfaces.Repository
}

// NewMongoCommentRepository creates a new MongoDB-backed comment repository
func NewMongoCommentRepository(base interfaces.Repository) CommentRepository {
	return &MongoCommentRepository{base: base}
}

// Create stores a new comment
func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	result := <-r.base.Save(ctx, commentCollectionName, comment)
	if result.Error != nil {
		return fmt.Errorf("failed to create comment: %w", result.Error)
	}
	return nil
}

// FindByPostID retrieves all comments for a post, newest first
func (r *MongoCommentRepository) FindByPostID(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	findOptions := &interfaces.FindOptions{
		Sort: []interfaces.SortField{{Field: "createdDate", Order: -1}},
	}

	result := <-r.base.Find(ctx, commentCollectionName, bson.M{"postId": postID}, findOptions)
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	defer result.Close()

	comments := []models.Comment{}
	for result.Next() {
		var comment models.Comment
		if err := result.Decode(&comment); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// CountAll counts every stored comment
func (r *MongoCommentRepository) CountAll(ctx context.Context) (int64, error) {
	result := <-r.base.Count(ctx, commentCollectionName, bson.M{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count comments: %w", result.Error)
	}
	return result.Count, nil
}

// DeleteByPostID removes all comments referencing the post
func (r *MongoCommentRepository) DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	result := <-r.base.Delete(ctx, commentCollectionName, bson.M{"postId": postID})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", result.Error)
	}
	deleted, _ := result.Result.(int64)
	return deleted, nil
}

// WithTransaction executes fn within a store transaction
func (r *MongoCommentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.base.WithTransaction(ctx, fn)
}

// EnsureIndexes creates the postId lookup index
func (r *MongoCommentRepository) EnsureIndexes(ctx context.Context) error {
	if err := <-r.base.CreateIndex(ctx, commentCollectionName, map[string]interface{}{"postId": 1}, false); err != nil {
		return fmt.Errorf("failed to create comment index: %w", err)
	}
	return nil
}
