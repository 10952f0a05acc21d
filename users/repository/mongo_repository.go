// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/users/models"
	"go.mongodb.org/mongo-driver/bson"
)

const userCollectionName = "users"

// MongoUserRepository implements UserRepository on the document store
type MongoUserRepository struct {
	base interfaces.Repository
}

// NewMongoUserRepository creates a new MongoDB-backed user repository
func NewMongoUserRepository(base interfaces.Repository) UserRepository {
	return &MongoUserRepository{base: base}
}

// Create stores a new user record
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	result := <-r.base.Save(ctx, userCollectionName, user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves a user by the external identity id
func (r *MongoUserRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	result := <-r.base.FindOne(ctx, userCollectionName, bson.M{"userId": userID})
	if result.NoResult() {
		return nil, interfaces.ErrNoDocuments
	}
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var user models.User
	if err := result.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// EnsureIndexes creates the unique userId index
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	if err := <-r.base.CreateIndex(ctx, userCollectionName, map[string]interface{}{"userId": 1}, true); err != nil {
		return fmt.Errorf("failed to create user index: %w", err)
	}
	return nil
}
