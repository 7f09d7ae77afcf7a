package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// MemoryCacheRepository is the process-local cache backend used when no
// Redis instance is configured. Values are stored marshaled so Get hands
// out copies, never shared references.
type MemoryCacheRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemoryCacheRepository constructs an empty in-memory cache.
func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{entries: map[string]memoryEntry{}}
}

// Get retrieves and unmarshals the cached value into the provided destination.
func (r *MemoryCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return appErrors.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.entries, key)
		r.mu.Unlock()
		return appErrors.ErrCacheMiss
	}

	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals the provided value and stores it with the given TTL. A zero
// TTL keeps the entry until invalidated.
func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()
	return nil
}

// DeleteByPattern removes cached entries matching the provided pattern.
// Only the trailing-wildcard form used by the cache keys is supported.
func (r *MemoryCacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix, wildcard := strings.CutSuffix(pattern, "*")

	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.entries {
		if key == pattern || (wildcard && strings.HasPrefix(key, prefix)) {
			delete(r.entries, key)
		}
	}
	return nil
}

// Close satisfies the cache backend surface; nothing to release.
func (r *MemoryCacheRepository) Close() error {
	return nil
}
