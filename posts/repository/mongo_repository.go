// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"regexp"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
	"go.mongodb.org/mongo-driver/bson"
)

const postCollectionName = "posts"

// MongoPostRepository implements PostRepository on the document store
type MongoPostRepository struct {
	base interfaces.Repository
}

// NewMongoPostRepository creates a new MongoDB-backed post repository
func NewMongoPostRepository(base interfaces.Repository) PostRepository {
	return &MongoPostRepository{base: base}
}

// Create stores a new post
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	result := <-r.base.Save(ctx, postCollectionName, post)
	if result.Error != nil {
		return fmt.Errorf("failed to create post: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a post by its ID
func (r *MongoPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	result := <-r.base.FindOne(ctx, postCollectionName, bson.M{"objectId": id})
	if result.NoResult() {
		return nil, interfaces.ErrNoDocuments
	}
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	var post models.Post
	if err := result.Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	return &post, nil
}

// buildFilter converts a PostFilter into a store query. Search terms are
// regex-escaped so user input is always matched literally.
func buildFilter(filter PostFilter) bson.M {
	query := bson.M{}

	if filter.Search != "" {
		pattern := regexp.QuoteMeta(filter.Search)
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"body": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}

	if filter.OwnerUserId != nil {
		query["ownerUserId"] = *filter.OwnerUserId
	}

	return query
}

// Find retrieves posts matching the filter, sorted and paginated
func (r *MongoPostRepository) Find(ctx context.Context, filter PostFilter, sort string, limit, offset int64) ([]models.Post, error) {
	sortSpec := []interfaces.SortField{{Field: "createdDate", Order: -1}}
	if sort == models.SortPopular {
		sortSpec = []interfaces.SortField{{Field: "likeCount", Order: -1}, {Field: "createdDate", Order: -1}}
	}

	findOptions := &interfaces.FindOptions{
		Limit: &limit,
		Skip:  &offset,
		Sort:  sortSpec,
	}

	result := <-r.base.Find(ctx, postCollectionName, buildFilter(filter), findOptions)
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	defer result.Close()

	posts := []models.Post{}
	for result.Next() {
		var post models.Post
		if err := result.Decode(&post); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// Count counts posts matching the filter
func (r *MongoPostRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	result := <-r.base.Count(ctx, postCollectionName, buildFilter(filter))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count posts: %w", result.Error)
	}
	return result.Count, nil
}

// UpdateFields updates specific fields on a post
func (r *MongoPostRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := <-r.base.Update(ctx, postCollectionName, bson.M{"objectId": id}, fields, nil)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	return nil
}

// AddLike adds the user to the likes set and bumps likeCount. The filter
// carries the membership precondition so the set and the counter move in a
// single store operation, which also returns the updated count.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) (int64, bool, error) {
	filter := bson.M{
		"objectId": postID,
		"likes":    bson.M{"$ne": userID},
	}
	update := map[string]interface{}{
		"$addToSet": bson.M{"likes": userID},
		"$inc":      bson.M{"likeCount": 1},
	}

	return r.applyLikeUpdate(ctx, filter, update, "add")
}

// RemoveLike removes the user from the likes set and drops likeCount.
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (int64, bool, error) {
	filter := bson.M{
		"objectId": postID,
		"likes":    userID,
	}
	update := map[string]interface{}{
		"$pull": bson.M{"likes": userID},
		"$inc":  bson.M{"likeCount": -1},
	}

	return r.applyLikeUpdate(ctx, filter, update, "remove")
}

func (r *MongoPostRepository) applyLikeUpdate(ctx context.Context, filter bson.M, update map[string]interface{}, op string) (int64, bool, error) {
	result := <-r.base.FindOneAndUpdate(ctx, postCollectionName, filter, update)
	if result.NoResult() {
		return 0, false, nil
	}
	if err := result.Error(); err != nil {
		return 0, false, fmt.Errorf("failed to %s like: %w", op, err)
	}

	var post models.Post
	if err := result.Decode(&post); err != nil {
		return 0, false, fmt.Errorf("failed to decode %s like result: %w", op, err)
	}
	return post.LikeCount, true, nil
}

// FloorLikeCount resets a negative likeCount back to zero. Pre-existing
// drift must never surface as a negative counter.
func (r *MongoPostRepository) FloorLikeCount(ctx context.Context, postID uuid.UUID) error {
	filter := bson.M{
		"objectId":  postID,
		"likeCount": bson.M{"$lt": int64(0)},
	}
	update := map[string]interface{}{
		"$set": bson.M{"likeCount": int64(0)},
	}

	result := <-r.base.Update(ctx, postCollectionName, filter, update, nil)
	if result.Error != nil {
		return fmt.Errorf("failed to floor like count: %w", result.Error)
	}
	return nil
}

// IncrementCommentCount adjusts the denormalized comment counter
func (r *MongoPostRepository) IncrementCommentCount(ctx context.Context, postID uuid.UUID, delta int) error {
	update := map[string]interface{}{
		"$inc": bson.M{"commentCount": delta},
	}

	result := <-r.base.Update(ctx, postCollectionName, bson.M{"objectId": postID}, update, nil)
	if result.Error != nil {
		return fmt.Errorf("failed to increment comment count: %w", result.Error)
	}
	return nil
}

// Delete removes a post
func (r *MongoPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := <-r.base.Delete(ctx, postCollectionName, bson.M{"objectId": id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	return nil
}

// Totals aggregates post count and like sum across the collection
func (r *MongoPostRepository) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":        nil,
			"totalPosts": bson.M{"$sum": 1},
			"totalLikes": bson.M{"$sum": "$likeCount"},
		}},
	}

	result := <-r.base.Aggregate(ctx, postCollectionName, pipeline)
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("failed to aggregate post totals: %w", err)
	}
	defer result.Close()

	totals := &models.DashboardTotals{}
	if result.Next() {
		if err := result.Decode(totals); err != nil {
			return nil, fmt.Errorf("failed to decode post totals: %w", err)
		}
	}
	return totals, nil
}

// TagCounts aggregates per-tag post frequencies, most frequent first
func (r *MongoPostRepository) TagCounts(ctx context.Context) ([]models.TagCount, error) {
	pipeline := []bson.M{
		{"$unwind": "$tags"},
		{"$group": bson.M{
			"_id":   "$tags",
			"count": bson.M{"$sum": 1},
		}},
		// bson.D keeps the stage ordered; a map would randomize which key
		// sorts first.
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}

	result := <-r.base.Aggregate(ctx, postCollectionName, pipeline)
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("failed to aggregate tag counts: %w", err)
	}
	defer result.Close()

	counts := []models.TagCount{}
	for result.Next() {
		var entry models.TagCount
		if err := result.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode tag count: %w", err)
		}
		counts = append(counts, entry)
	}
	return counts, nil
}

// WithTransaction executes fn within a store transaction
func (r *MongoPostRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.base.WithTransaction(ctx, fn)
}
