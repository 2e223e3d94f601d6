// Package docstore provides storage abstraction for descriptor documents.
//
// Documents are small, opaque byte blobs addressed by name. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests and ephemeral configuration
//   - LocalStore: local filesystem with atomic writes
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and S3-compatible storage
//   - dynamo.Store: Amazon DynamoDB
//
// # Custom Implementations
//
// Implement the Store interface to support custom backends:
//
//	type Store interface {
//	    Fetch(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Fetch must return an error satisfying errors.Is(err, ErrNotFound) for
// missing documents.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is an abstraction for reading and writing descriptor documents.
type Store interface {
	// Fetch reads the named document in full.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Put writes a document atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all documents with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
