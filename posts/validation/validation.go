// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"strings"

	"github.com/tahia-tahi/bright-tech-server/posts/models"
)

// ValidateCreatePostRequest validates the create post request
func ValidateCreatePostRequest(req *models.CreatePostRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if len(req.Title) > 256 {
		return fmt.Errorf("title must be less than 256 characters")
	}

	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("body is required")
	}

	if len(req.Body) > 20000 {
		return fmt.Errorf("body must be less than 20000 characters")
	}

	return nil
}

// ValidateUpdatePostRequest validates the update post request. Title and
// body are mandatory on every edit; tags and image are optional.
func ValidateUpdatePostRequest(req *models.UpdatePostRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if len(req.Title) > 256 {
		return fmt.Errorf("title must be less than 256 characters")
	}

	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("body is required")
	}

	if len(req.Body) > 20000 {
		return fmt.Errorf("body must be less than 20000 characters")
	}

	return nil
}

// ValidatePostQueryFilter validates the listing query filter
func ValidatePostQueryFilter(filter *models.PostQueryFilter) error {
	if filter == nil {
		return fmt.Errorf("filter is required")
	}

	if filter.Sort != "" && filter.Sort != models.SortRecency && filter.Sort != models.SortPopular {
		return fmt.Errorf("sort must be '%s' or '%s'", models.SortRecency, models.SortPopular)
	}

	filter.Normalize()

	return nil
}
