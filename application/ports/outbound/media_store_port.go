package outbound

import "context"

// MediaStorePort is URL-addressable storage for produced media: bytes in,
// durable URL out.
type MediaStorePort interface {
	Save(ctx context.Context, key string, content []byte, contentType string) (string, error)
}
