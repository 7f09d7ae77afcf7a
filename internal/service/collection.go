package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

type collectionClient interface {
	List(ctx context.Context, dest any) error
	Get(ctx context.Context, id int64, dest any) error
	Create(ctx context.Context, payload, dest any) error
	Update(ctx context.Context, id int64, payload, dest any) error
	Delete(ctx context.Context, id int64) error
}

type mutationRecorder interface {
	Record(ctx context.Context, action, entity string, objectID *int64, payload any)
}

const listKeyPrefix = "uni:list:"

// CollectionService layers caching, invalidation and the audit trail over
// one upstream collection. Every entity service delegates here so the
// read-after-write behavior stays uniform: a mutation drops the entity's
// own list snapshot and immediately refetches it, and no other entity's
// snapshot is touched.
type CollectionService struct {
	tag      string
	upstream collectionClient
	cache    *CacheService
	audit    mutationRecorder
	ttl      time.Duration
	logger   *zap.Logger
}

// NewCollectionService binds a collection tag to its upstream client.
func NewCollectionService(tag string, upstream collectionClient, cache *CacheService, audit mutationRecorder, ttl time.Duration, logger *zap.Logger) *CollectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionService{tag: tag, upstream: upstream, cache: cache, audit: audit, ttl: ttl, logger: logger}
}

// Tag returns the collection tag used in cache keys and audit entries.
func (s *CollectionService) Tag() string {
	return s.tag
}

func (s *CollectionService) listKey() string {
	return listKeyPrefix + s.tag
}

// List fills dest with the collection's records, serving the cached
// snapshot when one exists. The boolean reports whether the cache was hit.
func (s *CollectionService) List(ctx context.Context, dest any) (bool, error) {
	if hit, err := s.cache.Get(ctx, s.listKey(), dest); err == nil && hit {
		return true, nil
	}

	if err := s.upstream.List(ctx, dest); err != nil {
		return false, err
	}
	if err := s.cache.Set(ctx, s.listKey(), dest, s.ttl); err != nil {
		s.logger.Warn("failed to cache list snapshot", zap.String("tag", s.tag), zap.Error(err))
	}
	return false, nil
}

// Get fetches a single record straight from the upstream. Detail reads
// bypass the cache so an edit form always starts from current data.
func (s *CollectionService) Get(ctx context.Context, id int64, dest any) error {
	return s.upstream.Get(ctx, id, dest)
}

// Create posts a new record and settles the cache before returning.
func (s *CollectionService) Create(ctx context.Context, payload, dest any) error {
	if err := s.upstream.Create(ctx, payload, dest); err != nil {
		return err
	}
	s.settle(ctx)
	s.record(ctx, "create", nil, payload)
	return nil
}

// Update replaces a record and settles the cache before returning.
func (s *CollectionService) Update(ctx context.Context, id int64, payload, dest any) error {
	if err := s.upstream.Update(ctx, id, payload, dest); err != nil {
		return err
	}
	s.settle(ctx)
	s.record(ctx, "update", &id, payload)
	return nil
}

// Delete removes a record and settles the cache before returning.
func (s *CollectionService) Delete(ctx context.Context, id int64) error {
	if err := s.upstream.Delete(ctx, id); err != nil {
		return err
	}
	s.settle(ctx)
	s.record(ctx, "delete", &id, nil)
	return nil
}

// Warm refetches the collection from the upstream and replaces the cached
// snapshot, regardless of what is currently cached.
func (s *CollectionService) Warm(ctx context.Context) error {
	var rows []json.RawMessage
	if err := s.upstream.List(ctx, &rows); err != nil {
		return err
	}
	return s.cache.Set(ctx, s.listKey(), rows, s.ttl)
}

// settle restores read-after-write consistency after a mutation: the stale
// snapshot is dropped and a fresh one fetched immediately, so the next List
// reflects the write without waiting for a TTL expiry. A failed refetch
// only logs; the list is simply served from the upstream on the next read.
func (s *CollectionService) settle(ctx context.Context) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, s.listKey()); err != nil {
		return
	}
	if err := s.Warm(ctx); err != nil {
		s.logger.Warn("failed to refresh list snapshot after mutation", zap.String("tag", s.tag), zap.Error(err))
	}
}

func (s *CollectionService) record(ctx context.Context, action string, objectID *int64, payload any) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, action, s.tag, objectID, payload)
}
