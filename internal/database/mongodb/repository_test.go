// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tahia-tahi/bright-tech-server/internal/database/interfaces"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToSortDocumentPreservesOrder(t *testing.T) {
	sort := []interfaces.SortField{
		{Field: "likeCount", Order: -1},
		{Field: "createdDate", Order: -1},
	}

	// Multi-key sorts must reach the driver as an ordered document; it
	// rejects maps with more than one key.
	assert.Equal(t, bson.D{
		{Key: "likeCount", Value: -1},
		{Key: "createdDate", Value: -1},
	}, toSortDocument(sort))

	assert.Equal(t, bson.D{}, toSortDocument(nil))
}

func TestWrapSetOperator(t *testing.T) {
	plain := map[string]interface{}{"title": "t"}
	wrapped := wrapSetOperator(plain)
	assert.Equal(t, map[string]interface{}{"$set": plain}, wrapped)

	operators := map[string]interface{}{"$inc": map[string]interface{}{"likeCount": 1}}
	assert.Equal(t, operators, wrapSetOperator(operators))
}
