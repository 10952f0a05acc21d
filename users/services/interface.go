// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/users/models"
)

// UserService defines the interface for user business logic
type UserService interface {
	// SyncUser stores the verified identity claims on first contact and
	// returns the stored record unchanged on every later call
	SyncUser(ctx context.Context, user *types.UserContext) (*models.SyncUserResponse, error)
}
