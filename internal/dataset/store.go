package dataset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/arvind/retailscope/internal/domain"
	"github.com/arvind/retailscope/internal/metrics"
)

const loadKey = "load"

// Store owns the in-memory record set. The dataset is read exactly once per
// process lifetime (or per Reset): concurrent callers racing the first Load
// share a single physical read through the flight group and all receive the
// same result or failure.
//
// The published record slice is immutable; callers must not modify it.
type Store struct {
	source  Source
	logger  *slog.Logger
	metrics *metrics.Registry

	flight singleflight.Group

	mu       sync.RWMutex
	records  []domain.Transaction
	snapshot string
	loaded   bool
}

// NewStore constructs a Store over the given source. The metrics registry
// is optional.
func NewStore(source Source, logger *slog.Logger, reg *metrics.Registry) *Store {
	return &Store{
		source:  source,
		logger:  logger,
		metrics: reg,
	}
}

// Load returns the full record sequence, reading the source on first use.
// It is safe under concurrent invocation.
func (s *Store) Load(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	if s.loaded {
		records := s.records
		s.mu.RUnlock()
		return records, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.flight.Do(loadKey, func() (any, error) {
		// A racing caller may have completed the load between the fast
		// path check and joining the flight.
		s.mu.RLock()
		if s.loaded {
			records := s.records
			s.mu.RUnlock()
			return records, nil
		}
		s.mu.RUnlock()

		return s.read(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Transaction), nil
}

// Reset clears the cached record set and forgets any in-flight load so the
// next Load performs a fresh read.
func (s *Store) Reset() {
	s.mu.Lock()
	s.records = nil
	s.snapshot = ""
	s.loaded = false
	s.mu.Unlock()
	s.flight.Forget(loadKey)
}

// Snapshot reports the identifier assigned to the current load and the
// number of records it holds. The identifier is empty before the first
// successful load.
func (s *Store) Snapshot() (string, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, len(s.records)
}

func (s *Store) read(ctx context.Context) ([]domain.Transaction, error) {
	if s.source == nil {
		return nil, ErrMissingSource
	}

	start := time.Now()
	body, err := s.source.Fetch(ctx)
	if err != nil {
		s.observeFailure()
		return nil, err
	}
	defer body.Close()

	records, err := decodeRecords(body)
	if err != nil {
		s.observeFailure()
		return nil, &SourceError{Source: s.source.Describe(), Err: err}
	}

	snapshot := uuid.NewString()
	s.mu.Lock()
	s.records = records
	s.snapshot = snapshot
	s.loaded = true
	s.mu.Unlock()

	duration := time.Since(start)
	s.observeLoad(len(records), duration)
	s.logger.Info("dataset loaded",
		"source", s.source.Describe(),
		"records", len(records),
		"duration_ms", duration.Milliseconds(),
		"snapshot", snapshot,
	)
	return records, nil
}

func (s *Store) observeLoad(count int, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.LoadsTotal.Inc()
	s.metrics.RecordsLoaded.Set(float64(count))
	s.metrics.LoadSeconds.Observe(duration.Seconds())
}

func (s *Store) observeFailure() {
	if s.metrics == nil {
		return
	}
	s.metrics.LoadFailures.Inc()
}
