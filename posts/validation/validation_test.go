// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tahia-tahi/bright-tech-server/posts/models"
)

func TestValidateCreatePostRequest(t *testing.T) {
	assert.Error(t, ValidateCreatePostRequest(nil))
	assert.Error(t, ValidateCreatePostRequest(&models.CreatePostRequest{Body: "b"}))
	assert.Error(t, ValidateCreatePostRequest(&models.CreatePostRequest{Title: "t"}))
	assert.Error(t, ValidateCreatePostRequest(&models.CreatePostRequest{Title: "  ", Body: "b"}))
	assert.Error(t, ValidateCreatePostRequest(&models.CreatePostRequest{
		Title: strings.Repeat("x", 300),
		Body:  "b",
	}))

	assert.NoError(t, ValidateCreatePostRequest(&models.CreatePostRequest{Title: "t", Body: "b"}))
}

func TestValidateUpdatePostRequest(t *testing.T) {
	assert.Error(t, ValidateUpdatePostRequest(nil))
	assert.Error(t, ValidateUpdatePostRequest(&models.UpdatePostRequest{Body: "b"}))
	assert.Error(t, ValidateUpdatePostRequest(&models.UpdatePostRequest{Title: "t"}))

	tags := "go,api"
	assert.NoError(t, ValidateUpdatePostRequest(&models.UpdatePostRequest{Title: "t", Body: "b", Tags: &tags}))
}

func TestValidatePostQueryFilter(t *testing.T) {
	assert.Error(t, ValidatePostQueryFilter(nil))
	assert.Error(t, ValidatePostQueryFilter(&models.PostQueryFilter{Sort: "alphabetical"}))

	filter := &models.PostQueryFilter{Sort: models.SortPopular, Page: -1, Limit: 0}
	assert.NoError(t, ValidatePostQueryFilter(filter))
	assert.Equal(t, models.DefaultPage, filter.Page)
	assert.Equal(t, models.DefaultLimit, filter.Limit)
}
