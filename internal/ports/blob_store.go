package ports

import "context"

// BlobStore is the process-external key-value persistence boundary.
// Values are opaque strings. Get returns domain.ErrRecordNotFound for an
// absent key; Remove of an absent key is not an error.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
