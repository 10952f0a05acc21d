// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package types

import (
	uuid "github.com/gofrs/uuid"
)

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUID           = "uid"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// UserCtxName is the key used to store the authenticated UserContext in the
// Fiber request locals.
const UserCtxName = "user"

// Role values
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserContext carries the verified identity claims for the current request.
// It is populated by the authjwt middleware and never mutated afterwards.
type UserContext struct {
	UserID      uuid.UUID `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Avatar      string    `json:"avatar"`
	Role        string    `json:"role"`
}
