// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"strings"

	"github.com/tahia-tahi/bright-tech-server/comments/models"
)

// ValidateCreateCommentRequest validates the create comment request
func ValidateCreateCommentRequest(req *models.CreateCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("text is required")
	}

	if len(req.Text) > 1000 {
		return fmt.Errorf("text must be less than 1000 characters")
	}

	return nil
}
