package service

import (
	"context"
	"time"

	"github.com/arvind/retailscope/internal/domain"
	"github.com/arvind/retailscope/internal/metrics"
	"github.com/arvind/retailscope/internal/query"
)

// RecordStore is the dataset contract required by the service.
type RecordStore interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
	Reset()
	Snapshot() (string, int)
}

// TransactionService drives the query pipeline: it pulls the full record
// sequence from the store, filters, sorts, and slices. The service itself
// is stateless across calls; every query is a pure read over the store's
// immutable snapshot.
type TransactionService struct {
	store   RecordStore
	metrics *metrics.Registry
}

// NewTransactionService constructs a TransactionService. The metrics
// registry is optional.
func NewTransactionService(store RecordStore, reg *metrics.Registry) *TransactionService {
	return &TransactionService{
		store:   store,
		metrics: reg,
	}
}

// ListTransactions returns one page of the filtered, sorted record
// sequence together with its pagination envelope.
func (s *TransactionService) ListTransactions(ctx context.Context, q RawQuery) (domain.TransactionPage, error) {
	start := time.Now()

	filtered, err := s.filtered(ctx, q)
	if err != nil {
		return domain.TransactionPage{}, err
	}
	sorted := query.Sort(filtered, q.sortBy(), q.sortOrder())

	page := q.page()
	limit := q.limit()
	total := len(sorted)
	totalPages := (total + limit - 1) / limit

	data := slicePage(sorted, page, limit)

	s.observeQuery(time.Since(start))
	return domain.TransactionPage{
		Data: data,
		Pagination: domain.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalRecords: total,
			Limit:        limit,
		},
	}, nil
}

// FilterOptions derives the facet metadata for the dashboard's filter
// controls. It is recomputed per request; the store is immutable once
// loaded so there is nothing to invalidate.
func (s *TransactionService) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return query.Facets(records), nil
}

// Summary aggregates commerce totals over the entire filtered set. Unlike
// ListTransactions it never paginates: the figures describe everything the
// current filters select.
func (s *TransactionService) Summary(ctx context.Context, q RawQuery) (domain.Summary, error) {
	filtered, err := s.filtered(ctx, q)
	if err != nil {
		return domain.Summary{}, err
	}

	sum := domain.Summary{TotalRecords: len(filtered)}
	for i := range filtered {
		t := &filtered[i]
		sum.TotalUnitsSold += t.Quantity
		sum.TotalAmount += t.FinalAmount
		sum.TotalDiscount += t.TotalAmount - t.FinalAmount
	}
	return sum, nil
}

// Export returns the full filtered, sorted sequence for download.
func (s *TransactionService) Export(ctx context.Context, q RawQuery) ([]domain.Transaction, error) {
	filtered, err := s.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return query.Sort(filtered, q.sortBy(), q.sortOrder()), nil
}

// Reload clears the store and performs a fresh read, returning the new
// snapshot identifier and record count.
func (s *TransactionService) Reload(ctx context.Context) (string, int, error) {
	s.store.Reset()
	records, err := s.store.Load(ctx)
	if err != nil {
		return "", 0, err
	}
	snapshot, _ := s.store.Snapshot()
	return snapshot, len(records), nil
}

// Snapshot exposes the store's current snapshot identifier and size.
func (s *TransactionService) Snapshot() (string, int) {
	return s.store.Snapshot()
}

func (s *TransactionService) filtered(ctx context.Context, q RawQuery) ([]domain.Transaction, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	pred := query.NewPredicate(q.Filter())
	if pred.Vacuous() {
		// The shared snapshot is read-only, so the unfiltered view can be
		// served without copying.
		return records, nil
	}

	var filtered []domain.Transaction
	for i := range records {
		if pred.Matches(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered, nil
}

// slicePage slices out one page, order-preserving. Pages beyond the end
// (including negative pages) yield an empty slice, never an error.
func slicePage(records []domain.Transaction, page, limit int) []domain.Transaction {
	start := (page - 1) * limit
	if start < 0 || start >= len(records) {
		return []domain.Transaction{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

func (s *TransactionService) observeQuery(d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.QueriesTotal.Inc()
	s.metrics.QuerySeconds.Observe(d.Seconds())
}
