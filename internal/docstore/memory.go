package docstore

import (
	"context"
	"slices"
	"sync"
)

// MemoryBackend keeps documents in a map.
type MemoryBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Driver() Driver { return DriverMemory }

func (b *MemoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.docs[name]
	if !ok {
		return nil, ErrNotExist
	}
	return slices.Clone(data), nil
}

func (b *MemoryBackend) Write(_ context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.docs[name] = slices.Clone(data)
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
