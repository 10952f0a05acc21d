// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	authjwt "github.com/tahia-tahi/bright-tech-server/internal/middleware/authjwt"
	"github.com/tahia-tahi/bright-tech-server/internal/testutil"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/users/models"
)

// MockUserService is a mock implementation of services.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SyncUser(ctx context.Context, identity *types.UserContext) (*models.SyncUserResponse, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SyncUserResponse), args.Error(1)
}

func setupTestApp(t *testing.T) (*fiber.App, *MockUserService, string) {
	t.Helper()

	cfg, privPEM := testutil.NewTestConfig(t)

	service := new(MockUserService)
	handler := NewUserHandler(service)

	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey:   cfg.JWT.PublicKey,
		ClaimKey:    cfg.JWT.ClaimKey,
		UserCtxName: types.UserCtxName,
	})

	app := fiber.New()
	app.Post("/posts/user/sync", jwtMiddleware, handler.SyncUser)

	return app, service, privPEM
}

func TestSyncUserEndpoint(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	identity := types.UserContext{
		UserID:      uuid.Must(uuid.NewV4()),
		Email:       "sync@example.com",
		DisplayName: "Sync User",
		Role:        types.UserRole,
	}

	service.On("SyncUser", mock.Anything, mock.MatchedBy(func(u *types.UserContext) bool {
		return u.UserID == identity.UserID && u.Email == identity.Email
	})).Return(&models.SyncUserResponse{
		Success: true,
		User: models.UserResponse{
			ObjectId: uuid.Must(uuid.NewV4()).String(),
			UserId:   identity.UserID.String(),
			Email:    identity.Email,
			Role:     types.UserRole,
		},
	}, nil)

	token, err := testutil.GenerateTestJWT(privPEM, identity)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/posts/user/sync", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.SyncUserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, identity.UserID.String(), body.User.UserId)
	assert.Equal(t, types.UserRole, body.User.Role)
}

func TestSyncUserEndpointRequiresAuth(t *testing.T) {
	app, service, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/user/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	service.AssertNotCalled(t, "SyncUser", mock.Anything, mock.Anything)
}
