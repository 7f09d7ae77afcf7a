package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-hq/uni-admin-gateway/pkg/jobs"
)

// Warmer refreshes one cached collection snapshot.
type Warmer interface {
	Tag() string
	Warm(ctx context.Context) error
}

// WarmService schedules cache warm-up work on the background queue so a
// console deploy or an explicit refresh does not pay the upstream fan-out
// on the request path.
type WarmService struct {
	queue   *jobs.Queue
	warmers map[string]Warmer
	logger  *zap.Logger
}

// NewWarmService constructs a WarmService over the provided collections.
func NewWarmService(warmers []Warmer, cfg jobs.QueueConfig, logger *zap.Logger) *WarmService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &WarmService{warmers: map[string]Warmer{}, logger: logger}
	for _, w := range warmers {
		s.warmers[w.Tag()] = w
	}
	s.queue = jobs.NewQueue("cache-warm", s.handle, cfg)
	return s
}

// Start begins queue workers.
func (s *WarmService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains queue workers.
func (s *WarmService) Stop() {
	s.queue.Stop()
}

// WarmAll enqueues a warm-up job for every registered collection and
// returns the tags scheduled.
func (s *WarmService) WarmAll() ([]string, error) {
	tags := make([]string, 0, len(s.warmers))
	for tag := range s.warmers {
		if err := s.enqueue(tag); err != nil {
			return tags, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// WarmTag enqueues a warm-up job for a single collection.
func (s *WarmService) WarmTag(tag string) error {
	if _, ok := s.warmers[tag]; !ok {
		return fmt.Errorf("unknown collection %q", tag)
	}
	return s.enqueue(tag)
}

// Tags lists the collections available for warm-up.
func (s *WarmService) Tags() []string {
	tags := make([]string, 0, len(s.warmers))
	for tag := range s.warmers {
		tags = append(tags, tag)
	}
	return tags
}

func (s *WarmService) enqueue(tag string) error {
	return s.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    "warm",
		Payload: tag,
	})
}

func (s *WarmService) handle(ctx context.Context, job jobs.Job) error {
	tag, ok := job.Payload.(string)
	if !ok {
		return fmt.Errorf("warm job payload is not a tag")
	}
	warmer, ok := s.warmers[tag]
	if !ok {
		return fmt.Errorf("unknown collection %q", tag)
	}
	if err := warmer.Warm(ctx); err != nil {
		return fmt.Errorf("warm %s: %w", tag, err)
	}
	s.logger.Debug("collection snapshot warmed", zap.String("tag", tag))
	return nil
}
