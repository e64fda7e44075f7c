package port

import (
	"context"
	"io"
)

// ObjectStorage reads bulk-load sources from an object store. The loader
// streams Corporate Data File exports that are too large to buffer.
type ObjectStorage interface {
	// Open returns a reader over the object; the caller closes it.
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
