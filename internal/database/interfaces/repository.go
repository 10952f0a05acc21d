// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package interfaces

import (
	"context"
	"time"
)

// Repository defines the interface for document store operations.
// Domain repositories are built on top of this abstraction and receive it
// through their constructors; collection handles are never held in globals.
type Repository interface {
	// Basic CRUD operations
	Save(ctx context.Context, collectionName string, data interface{}) <-chan RepositoryResult
	Find(ctx context.Context, collectionName string, filter interface{}, opts *FindOptions) <-chan QueryResult
	FindOne(ctx context.Context, collectionName string, filter interface{}) <-chan SingleResult
	Update(ctx context.Context, collectionName string, filter interface{}, data interface{}, opts *UpdateOptions) <-chan RepositoryResult
	UpdateMany(ctx context.Context, collectionName string, filter interface{}, data interface{}, opts *UpdateOptions) <-chan RepositoryResult
	FindOneAndUpdate(ctx context.Context, collectionName string, filter interface{}, data interface{}) <-chan SingleResult
	Delete(ctx context.Context, collectionName string, filter interface{}) <-chan RepositoryResult

	// Aggregation operations
	Count(ctx context.Context, collectionName string, filter interface{}) <-chan CountResult
	Aggregate(ctx context.Context, collectionName string, pipeline interface{}) <-chan QueryResult

	// Index operations
	CreateIndex(ctx context.Context, collectionName string, indexes map[string]interface{}, unique bool) <-chan error

	// Transaction support
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Connection management
	Ping(ctx context.Context) <-chan error
	Close() error
}

// SortField is one key of an ordered sort specification.
type SortField struct {
	Field string
	Order int
}

// FindOptions represents options for find operations. Sort is an ordered
// slice because the store treats the sort document as order-sensitive; a Go
// map would randomize key order across requests.
type FindOptions struct {
	Limit  *int64
	Skip   *int64
	Sort   []SortField
	Select map[string]int
}

// UpdateOptions represents options for update operations
type UpdateOptions struct {
	Upsert *bool
}

// RepositoryResult represents the result of a repository operation.
// For updates, MatchedCount reports how many documents the filter selected,
// which callers use for conditional (membership-keyed) mutations.
type RepositoryResult struct {
	Result       interface{}
	MatchedCount int64
	Error        error
}

// QueryResult represents a query result cursor
type QueryResult interface {
	Next() bool
	Decode(v interface{}) error
	Close()
	Error() error
}

// SingleResult represents a single document result
type SingleResult interface {
	Decode(v interface{}) error
	Error() error
	NoResult() bool
}

// CountResult represents the result of a count operation
type CountResult struct {
	Count int64
	Error error
}

// MongoDBConfig holds connection settings for the MongoDB backend.
type MongoDBConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	AuthDatabase   string
	ReplicaSet     string
	SSL            bool
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout int
	SocketTimeout  int
	MaxIdleTime    int
}

// Common errors
var (
	ErrNoDocuments      = NewRepositoryError("no documents found", "NOT_FOUND")
	ErrDuplicateKey     = NewRepositoryError("duplicate key error", "DUPLICATE_KEY")
	ErrConnectionFailed = NewRepositoryError("database connection failed", "CONNECTION_FAILED")
)

// RepositoryError represents a repository specific error
type RepositoryError struct {
	Message string
	Code    string
	Time    time.Time
}

func (e *RepositoryError) Error() string {
	return e.Message
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(message, code string) *RepositoryError {
	return &RepositoryError{
		Message: message,
		Code:    code,
		Time:    time.Now(),
	}
}
