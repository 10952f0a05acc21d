// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/users/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create stores a new user record. The unique index on userId rejects
	// a concurrent duplicate.
	Create(ctx context.Context, user *models.User) error

	// FindByUserID retrieves a user by the external identity id
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// EnsureIndexes creates the unique userId index
	EnsureIndexes(ctx context.Context) error
}
