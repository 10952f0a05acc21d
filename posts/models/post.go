// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"strings"

	uuid "github.com/gofrs/uuid"
)

// Post represents the complete post entity in the database
type Post struct {
	ObjectId         uuid.UUID   `json:"objectId" bson:"objectId"`
	Title            string      `json:"title" bson:"title"`
	Body             string      `json:"body" bson:"body"`
	Tags             []string    `json:"tags" bson:"tags"`
	Image            string      `json:"image" bson:"image"`
	OwnerUserId      uuid.UUID   `json:"ownerUserId" bson:"ownerUserId"`
	OwnerEmail       string      `json:"ownerEmail" bson:"ownerEmail"`
	OwnerDisplayName string      `json:"ownerDisplayName" bson:"ownerDisplayName"`
	OwnerAvatar      string      `json:"ownerAvatar" bson:"ownerAvatar"`
	LikeCount        int64       `json:"likeCount" bson:"likeCount"`
	CommentCount     int64       `json:"commentCount" bson:"commentCount"`
	Likes            []uuid.UUID `json:"likes" bson:"likes"`
	CreatedDate      int64       `json:"createdDate" bson:"createdDate"`
	LastUpdated      int64       `json:"lastUpdated" bson:"lastUpdated"`
}

// LikedBy reports whether the given user is in the likes set.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CreatePostRequest represents the request payload for creating a post.
// Tags arrive as a comma-separated string and are normalized before storage.
type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tags  string `json:"tags,omitempty"`
	Image string `json:"image,omitempty"`
}

// UpdatePostRequest represents the request payload for updating a post.
// Title and body are mandatory on every edit; tags and image are optional
// and preserve the stored values when absent.
type UpdatePostRequest struct {
	Title string  `json:"title"`
	Body  string  `json:"body"`
	Tags  *string `json:"tags,omitempty"`
	Image *string `json:"image,omitempty"`
}

// Sort modes for post listings
const (
	SortRecency = "recency"
	SortPopular = "popular"
)

// Pagination bounds
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PostQueryFilter represents query filters for post listings
type PostQueryFilter struct {
	Search string `json:"search,omitempty" schema:"search"`
	Tag    string `json:"tag,omitempty" schema:"tag"`
	Sort   string `json:"sort,omitempty" schema:"sort"`
	Page   int    `json:"page,omitempty" schema:"page"`
	Limit  int    `json:"limit,omitempty" schema:"limit"`
}

// Normalize applies defaults and bounds to the filter.
func (f *PostQueryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Sort != SortPopular {
		f.Sort = SortRecency
	}
	f.Tag = strings.ToLower(strings.TrimSpace(f.Tag))
	f.Search = strings.TrimSpace(f.Search)
}

// PostResponse represents the API response for a post
type PostResponse struct {
	ObjectId         string   `json:"objectId"`
	Title            string   `json:"title"`
	Body             string   `json:"body"`
	Tags             []string `json:"tags"`
	Image            string   `json:"image,omitempty"`
	OwnerUserId      string   `json:"ownerUserId"`
	OwnerEmail       string   `json:"ownerEmail"`
	OwnerDisplayName string   `json:"ownerDisplayName"`
	OwnerAvatar      string   `json:"ownerAvatar"`
	LikeCount        int64    `json:"likeCount"`
	CommentCount     int64    `json:"commentCount"`
	Liked            bool     `json:"liked"`
	CreatedDate      int64    `json:"createdDate"`
	LastUpdated      int64    `json:"lastUpdated,omitempty"`
}

// ToPostResponse converts a post entity to its API shape. The liked flag is
// computed against the caller identity; a nil caller always yields false.
func ToPostResponse(post *Post, caller *uuid.UUID) PostResponse {
	response := PostResponse{
		ObjectId:         post.ObjectId.String(),
		Title:            post.Title,
		Body:             post.Body,
		Tags:             post.Tags,
		Image:            post.Image,
		OwnerUserId:      post.OwnerUserId.String(),
		OwnerEmail:       post.OwnerEmail,
		OwnerDisplayName: post.OwnerDisplayName,
		OwnerAvatar:      post.OwnerAvatar,
		LikeCount:        post.LikeCount,
		CommentCount:     post.CommentCount,
		CreatedDate:      post.CreatedDate,
		LastUpdated:      post.LastUpdated,
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if caller != nil {
		response.Liked = post.LikedBy(*caller)
	}
	return response
}

// CreatePostResponse represents the response after creating a post
type CreatePostResponse struct {
	Success bool   `json:"success"`
	PostId  string `json:"postId"`
}

// PostsListResponse represents the response for listing posts
type PostsListResponse struct {
	Success bool           `json:"success"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Posts   []PostResponse `json:"posts"`
}

// LikeResponse represents the response of a like toggle
type LikeResponse struct {
	Success   bool  `json:"success"`
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// TagCount is a per-tag post frequency entry
type TagCount struct {
	Tag   string `json:"tag" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// DashboardTotals carries the post-collection aggregates
type DashboardTotals struct {
	TotalPosts int64 `json:"totalPosts" bson:"totalPosts"`
	TotalLikes int64 `json:"totalLikes" bson:"totalLikes"`
}

// DashboardResponse represents the dashboard overview, computed fresh on
// every request.
type DashboardResponse struct {
	Success       bool       `json:"success"`
	TotalPosts    int64      `json:"totalPosts"`
	TotalLikes    int64      `json:"totalLikes"`
	TotalComments int64      `json:"totalComments"`
	Tags          []TagCount `json:"tags"`
}

// NormalizeTags splits a comma-separated tag string into a lowercased,
// trimmed, deduplicated slice. Order of first appearance is preserved.
func NormalizeTags(raw string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
