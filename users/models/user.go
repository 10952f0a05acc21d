// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	uuid "github.com/gofrs/uuid"
)

// User represents the locally synced record of an externally managed
// identity. The identity provider stays authoritative; this record only
// mirrors the profile claims seen at sync time.
type User struct {
	ObjectId    uuid.UUID `json:"objectId" bson:"objectId"`
	UserId      uuid.UUID `json:"userId" bson:"userId"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"displayName" bson:"displayName"`
	Avatar      string    `json:"avatar" bson:"avatar"`
	Role        string    `json:"role" bson:"role"`
	CreatedDate int64     `json:"createdDate" bson:"createdDate"`
}

// UserResponse represents the response format for user data
type UserResponse struct {
	ObjectId    string `json:"objectId"`
	UserId      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	Role        string `json:"role"`
	CreatedDate int64  `json:"createdDate"`
}

// ToUserResponse converts a user entity to its API shape
func ToUserResponse(user *User) UserResponse {
	return UserResponse{
		ObjectId:    user.ObjectId.String(),
		UserId:      user.UserId.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Avatar:      user.Avatar,
		Role:        user.Role,
		CreatedDate: user.CreatedDate,
	}
}

// SyncUserResponse represents the response of an identity sync
type SyncUserResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
