// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	uuid "github.com/gofrs/uuid"
)

// Comment represents the complete comment entity in the database.
// Comments are append-only; they are never edited and are removed only by
// the post-delete cascade.
type Comment struct {
	ObjectId         uuid.UUID `json:"objectId" bson:"objectId"`
	PostId           uuid.UUID `json:"postId" bson:"postId"`
	OwnerUserId      uuid.UUID `json:"ownerUserId" bson:"ownerUserId"`
	OwnerEmail       string    `json:"ownerEmail" bson:"ownerEmail"`
	OwnerDisplayName string    `json:"ownerDisplayName" bson:"ownerDisplayName"`
	OwnerAvatar      string    `json:"ownerAvatar" bson:"ownerAvatar"`
	Text             string    `json:"text" bson:"text"`
	CreatedDate      int64     `json:"createdDate" bson:"createdDate"`
}

// CreateCommentRequest represents the request payload for creating a comment
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse represents the response format for comment data
type CommentResponse struct {
	ObjectId         string `json:"objectId"`
	PostId           string `json:"postId"`
	OwnerUserId      string `json:"ownerUserId"`
	OwnerEmail       string `json:"ownerEmail"`
	OwnerDisplayName string `json:"ownerDisplayName"`
	OwnerAvatar      string `json:"ownerAvatar"`
	Text             string `json:"text"`
	CreatedDate      int64  `json:"createdDate"`
}

// ToCommentResponse converts a comment entity to its API shape
func ToCommentResponse(comment *Comment) CommentResponse {
	return CommentResponse{
		ObjectId:         comment.ObjectId.String(),
		PostId:           comment.PostId.String(),
		OwnerUserId:      comment.OwnerUserId.String(),
		OwnerEmail:       comment.OwnerEmail,
		OwnerDisplayName: comment.OwnerDisplayName,
		OwnerAvatar:      comment.OwnerAvatar,
		Text:             comment.Text,
		CreatedDate:      comment.CreatedDate,
	}
}

// CreateCommentResponse represents the response after creating a comment
type CreateCommentResponse struct {
	Success   bool   `json:"success"`
	CommentId string `json:"commentId"`
}

// CommentsListResponse represents the response for listing comments
type CommentsListResponse struct {
	Success  bool              `json:"success"`
	Comments []CommentResponse `json:"comments"`
}
