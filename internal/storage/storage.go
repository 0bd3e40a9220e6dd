// Package storage holds receipt documents and export artifacts in an
// object store. The S3 implementation is used in deployment; the
// filesystem implementation backs local runs and tests.
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is how the rest of the system touches document storage.
// Keys are opaque; callers persist them on the receipt and hand them back.
type ObjectStore interface {
	// Upload stores the content and returns the generated object key.
	Upload(ctx context.Context, projectID string, filename string, content io.Reader) (string, error)
	// GetURL returns a time-limited URL for the object, suitable for
	// handing to an external service.
	GetURL(ctx context.Context, key string) (string, error)
	// Download stages the object at localPath, creating parent directories.
	Download(ctx context.Context, key, localPath string) error
	Delete(ctx context.Context, key string) error
}

// DefaultURLTTL bounds presigned URL lifetime when none is configured.
const DefaultURLTTL = 15 * time.Minute
