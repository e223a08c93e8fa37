package service

import (
	"context"
	"io"
)

// BlobStorage stores uploaded or fetched images under generated object keys
// and resolves keys to publicly retrievable URLs.
type BlobStorage interface {
	// Store writes the object under the given key and returns its public URL.
	Store(ctx context.Context, key, contentType string, data io.Reader) (string, error)

	// URL resolves an object key to its public URL.
	URL(key string) string
}
