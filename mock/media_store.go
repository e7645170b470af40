package mock

import (
	"context"
	"sync"
)

// MediaStore is an in-memory URL-addressable store.
type MediaStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMediaStore() *MediaStore {
	return &MediaStore{Objects: make(map[string][]byte)}
}

func (m *MediaStore) Save(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = content
	return "https://media.test/" + key, nil
}
