// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"bytes"
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
	constraints "github.com/tahia-tahi/bright-tech-server/internal/middleware/constraints"
	"github.com/tahia-tahi/bright-tech-server/internal/testutil"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	apperrors "github.com/tahia-tahi/bright-tech-server/posts/errors"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
)

// MockPostService is a mock implementation of services.PostService.
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req *models.CreatePostRequest, user *types.UserContext) (*models.CreatePostResponse, error) {
	args := m.Called(ctx, req, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatePostResponse), args.Error(1)
}

func (m *MockPostService) QueryPosts(ctx context.Context, filter *models.PostQueryFilter, caller *uuid.UUID) (*models.PostsListResponse, error) {
	args := m.Called(ctx, filter, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostsListResponse), args.Error(1)
}

func (m *MockPostService) QueryMyPosts(ctx context.Context, filter *models.PostQueryFilter, user *types.UserContext) (*models.PostsListResponse, error) {
	args := m.Called(ctx, filter, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostsListResponse), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID uuid.UUID, caller *uuid.UUID) (*models.PostResponse, error) {
	args := m.Called(ctx, postID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostResponse), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID uuid.UUID, req *models.UpdatePostRequest, user *types.UserContext) error {
	args := m.Called(ctx, postID, req, user)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID uuid.UUID, user *types.UserContext) error {
	args := m.Called(ctx, postID, user)
	return args.Error(0)
}

func (m *MockPostService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*models.LikeResponse, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeResponse), args.Error(1)
}

func (m *MockPostService) GetDashboard(ctx context.Context) (*models.DashboardResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardResponse), args.Error(1)
}

// setupTestApp wires the handler under a route table mirroring the posts
// router, with the real JWT middleware and a fresh test key pair.
func setupTestApp(t *testing.T) (*fiber.App, *MockPostService, string) {
	t.Helper()

	cfg, privPEM := testutil.NewTestConfig(t)

	service := new(MockPostService)
	handler := NewPostHandler(service)

	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey:   cfg.JWT.PublicKey,
		ClaimKey:    cfg.JWT.ClaimKey,
		UserCtxName: types.UserCtxName,
	})

	app := fiber.New()
	group := app.Group("/posts")
	group.Get("/", handler.QueryPosts)

	userGroup := group.Group("", jwtMiddleware)
	userGroup.Post("/", handler.CreatePost)
	userGroup.Get("/dashboard/overview", handler.GetDashboard)
	userGroup.Get("/my-posts", handler.QueryMyPosts)
	userGroup.Patch("/like/:postId", constraints.RequireUUID("postId"), handler.ToggleLike)
	userGroup.Get("/:postId", constraints.RequireUUID("postId"), handler.GetPost)
	userGroup.Put("/:postId", constraints.RequireUUID("postId"), handler.UpdatePost)
	userGroup.Delete("/:postId", constraints.RequireUUID("postId"), handler.DeletePost)

	return app, service, privPEM
}

func authedRequest(t *testing.T, privPEM, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(types.HeaderContentType, "application/json")
	}

	token, err := testutil.GenerateTestJWT(privPEM, types.UserContext{
		UserID:      uuid.Must(uuid.NewV4()),
		Email:       "author@example.com",
		DisplayName: "Author",
		Role:        types.UserRole,
	})
	require.NoError(t, err)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)

	return req
}

func TestCreatePostEndpoint(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	postID := uuid.Must(uuid.NewV4())
	service.On("CreatePost", mock.Anything, mock.AnythingOfType("*models.CreatePostRequest"), mock.AnythingOfType("*types.UserContext")).
		Return(&models.CreatePostResponse{Success: true, PostId: postID.String()}, nil)

	req := authedRequest(t, privPEM, http.MethodPost, "/posts/", models.CreatePostRequest{
		Title: "Hello",
		Body:  "World",
		Tags:  "go,web",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body models.CreatePostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, postID.String(), body.PostId)
}

func TestCreatePostEndpointValidation(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	req := authedRequest(t, privPEM, http.MethodPost, "/posts/", models.CreatePostRequest{Body: "no title"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostEndpointRequiresAuth(t *testing.T) {
	app, service, _ := setupTestApp(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(models.CreatePostRequest{Title: "t", Body: "b"}))
	req := httptest.NewRequest(http.MethodPost, "/posts/", &buf)
	req.Header.Set(types.HeaderContentType, "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	service.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestQueryPostsEndpointIsPublic(t *testing.T) {
	app, service, _ := setupTestApp(t)

	service.On("QueryPosts", mock.Anything, mock.MatchedBy(func(f *models.PostQueryFilter) bool {
		return f.Search == "mongo" && f.Tag == "go" && f.Sort == models.SortPopular && f.Page == 2
	}), (*uuid.UUID)(nil)).
		Return(&models.PostsListResponse{Success: true, Total: 0, Page: 2, Posts: []models.PostResponse{}}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/?search=mongo&tag=go&sort=popular&page=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.PostsListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Page)
}

func TestQueryPostsEndpointRejectsBadSort(t *testing.T) {
	app, service, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/?sort=alphabetical", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "QueryPosts", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPostEndpointRejectsNonUUID(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	req := authedRequest(t, privPEM, http.MethodGet, "/posts/not-a-uuid", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	service.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPostEndpointNotFound(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	postID := uuid.Must(uuid.NewV4())
	service.On("GetPost", mock.Anything, postID, mock.Anything).
		Return(nil, apperrors.ErrPostNotFound)

	req := authedRequest(t, privPEM, http.MethodGet, "/posts/"+postID.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body apperrors.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Post not found", body.Message)
}

func TestUpdatePostEndpointForeignOwner(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	postID := uuid.Must(uuid.NewV4())
	service.On("UpdatePost", mock.Anything, postID, mock.Anything, mock.Anything).
		Return(apperrors.ErrPostOwnershipRequired)

	req := authedRequest(t, privPEM, http.MethodPut, "/posts/"+postID.String(), models.UpdatePostRequest{
		Title: "new title",
		Body:  "new body",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeletePostEndpoint(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	postID := uuid.Must(uuid.NewV4())
	service.On("DeletePost", mock.Anything, postID, mock.Anything).Return(nil)

	req := authedRequest(t, privPEM, http.MethodDelete, "/posts/"+postID.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
}

func TestToggleLikeEndpoint(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	postID := uuid.Must(uuid.NewV4())
	service.On("ToggleLike", mock.Anything, postID, mock.AnythingOfType("uuid.UUID")).
		Return(&models.LikeResponse{Success: true, Liked: true, LikeCount: 5}, nil)

	req := authedRequest(t, privPEM, http.MethodPatch, "/posts/like/"+postID.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.LikeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Liked)
	assert.Equal(t, int64(5), body.LikeCount)
}

func TestDashboardEndpoint(t *testing.T) {
	app, service, privPEM := setupTestApp(t)

	service.On("GetDashboard", mock.Anything).
		Return(&models.DashboardResponse{
			Success:       true,
			TotalPosts:    3,
			TotalLikes:    7,
			TotalComments: 2,
			Tags:          []models.TagCount{{Tag: "go", Count: 2}},
		}, nil)

	req := authedRequest(t, privPEM, http.MethodGet, "/posts/dashboard/overview", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.TotalPosts)
	require.Len(t, body.Tags, 1)
	assert.Equal(t, "go", body.Tags[0].Tag)
}
