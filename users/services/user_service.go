// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"github.com/tahia-tahi/bright-tech-server/internal/pkg/log"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/internal/utils"
	apperrors "github.com/tahia-tahi/bright-tech-server/users/errors"
	"github.com/tahia-tahi/bright-tech-server/users/models"
	"github.com/tahia-tahi/bright-tech-server/users/repository"
)

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// SyncUser stores the verified identity claims on first contact, keyed by
// the external identity id. Later calls return the stored record unchanged.
// The role is always "user" on create; token claims never elevate it.
func (s *userService) SyncUser(ctx context.Context, user *types.UserContext) (*models.SyncUserResponse, error) {
	if user == nil || user.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidUserContext
	}

	existing, err := s.userRepo.FindByUserID(ctx, user.UserID)
	if err == nil {
		return syncResponse(existing), nil
	}
	if !errors.Is(err, interfaces.ErrNoDocuments) {
		log.ErrorWithContext(ctx, "failed to look up user %s: %v", user.UserID, err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	objectID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	record := &models.User{
		ObjectId:    objectID,
		UserId:      user.UserID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Avatar:      user.Avatar,
		Role:        types.UserRole,
		CreatedDate: utils.UTCNowUnix(),
	}

	if err := s.userRepo.Create(ctx, record); err != nil {
		// A concurrent sync may have won the unique index race; the
		// stored record is authoritative either way.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			stored, findErr := s.userRepo.FindByUserID(ctx, user.UserID)
			if findErr != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, findErr)
			}
			return syncResponse(stored), nil
		}
		log.ErrorWithContext(ctx, "failed to create user %s: %v", user.UserID, err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}

	return syncResponse(record), nil
}

func syncResponse(user *models.User) *models.SyncUserResponse {
	return &models.SyncUserResponse{
		Success: true,
		User:    models.ToUserResponse(user),
	}
}
