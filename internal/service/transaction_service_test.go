package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arvind/retailscope/internal/domain"
)

type stubStore struct {
	records  []domain.Transaction
	err      error
	loads    int
	resets   int
	snapshot string
}

func (s *stubStore) Load(_ context.Context) ([]domain.Transaction, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubStore) Reset() { s.resets++ }

func (s *stubStore) Snapshot() (string, int) { return s.snapshot, len(s.records) }

func fixtureRecords() []domain.Transaction {
	mk := func(id, name, region, date, tags string, age, quantity int, total, final float64) domain.Transaction {
		t := domain.Transaction{
			TransactionID:  id,
			CustomerName:   name,
			CustomerRegion: region,
			Date:           date,
			Tags:           tags,
			Age:            age,
			Quantity:       quantity,
			TotalAmount:    total,
			FinalAmount:    final,
		}
		t.Derive()
		return t
	}
	return []domain.Transaction{
		mk("TXN-A", "Asha Rao", "North", "2024-01-01", "sale, new", 30, 2, 100, 90),
		mk("TXN-B", "Vikram Singh", "South", "2024-06-01", "sale", 45, 5, 250, 250),
		mk("TXN-C", "Meera Nair", "North", "2024-03-01", "new", 60, 1, 80, 72),
	}
}

func newFixtureService() (*TransactionService, *stubStore) {
	store := &stubStore{records: fixtureRecords(), snapshot: "snap-1"}
	return NewTransactionService(store, nil), store
}

func TestListTransactionsFilterSortPaginate(t *testing.T) {
	svc, _ := newFixtureService()

	page, err := svc.ListTransactions(context.Background(), RawQuery{Region: "North"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Default sort is date descending: newest of the two North records first.
	if len(page.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(page.Data))
	}
	if page.Data[0].TransactionID != "TXN-C" || page.Data[1].TransactionID != "TXN-A" {
		t.Fatalf("unexpected order: %s, %s", page.Data[0].TransactionID, page.Data[1].TransactionID)
	}
	if page.Pagination.TotalRecords != 2 {
		t.Fatalf("totalRecords = %d, want 2", page.Pagination.TotalRecords)
	}
	if page.Pagination.TotalPages != 1 {
		t.Fatalf("totalPages = %d, want 1", page.Pagination.TotalPages)
	}
	if page.Pagination.CurrentPage != 1 || page.Pagination.Limit != 10 {
		t.Fatalf("unexpected pagination defaults: %+v", page.Pagination)
	}
}

func TestListTransactionsPagination(t *testing.T) {
	svc, _ := newFixtureService()

	first, err := svc.ListTransactions(context.Background(), RawQuery{Limit: "2", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	second, err := svc.ListTransactions(context.Background(), RawQuery{Limit: "2", Page: "2", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}

	if len(first.Data) != 2 || len(second.Data) != 1 {
		t.Fatalf("expected page sizes 2 and 1, got %d and %d", len(first.Data), len(second.Data))
	}
	if first.Pagination.TotalPages != 2 || second.Pagination.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d and %d", first.Pagination.TotalPages, second.Pagination.TotalPages)
	}

	// Ascending date order across the concatenated pages.
	sequence := append(first.Data, second.Data...)
	want := []string{"TXN-A", "TXN-C", "TXN-B"}
	for i, id := range want {
		if sequence[i].TransactionID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, sequence[i].TransactionID)
		}
	}
}

func TestListTransactionsPageBeyondEnd(t *testing.T) {
	svc, _ := newFixtureService()

	page, err := svc.ListTransactions(context.Background(), RawQuery{Page: "99"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Data == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(page.Data) != 0 {
		t.Fatalf("expected no records, got %d", len(page.Data))
	}
	if page.Pagination.CurrentPage != 99 {
		t.Fatalf("currentPage = %d, want 99", page.Pagination.CurrentPage)
	}
	if page.Pagination.TotalRecords != 3 {
		t.Fatalf("totalRecords = %d, want 3", page.Pagination.TotalRecords)
	}
}

func TestListTransactionsNegativePage(t *testing.T) {
	svc, _ := newFixtureService()

	page, err := svc.ListTransactions(context.Background(), RawQuery{Page: "-1"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Data) != 0 {
		t.Fatalf("expected empty page for negative page number, got %d records", len(page.Data))
	}
}

func TestListTransactionsStoreError(t *testing.T) {
	store := &stubStore{err: errors.New("source unreachable")}
	svc := NewTransactionService(store, nil)

	if _, err := svc.ListTransactions(context.Background(), RawQuery{}); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestFilterOptions(t *testing.T) {
	svc, _ := newFixtureService()

	options, err := svc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("filter options failed: %v", err)
	}
	if len(options.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %v", options.Regions)
	}
	if options.AgeRange.Min != 30 || options.AgeRange.Max != 60 {
		t.Fatalf("age range = %+v, want {30 60}", options.AgeRange)
	}
}

func TestSummaryCoversWholeFilteredSet(t *testing.T) {
	svc, _ := newFixtureService()

	// Limit 1 must not shrink the aggregates: summary ignores pagination.
	sum, err := svc.Summary(context.Background(), RawQuery{Limit: "1"})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if sum.TotalRecords != 3 {
		t.Fatalf("totalRecords = %d, want 3", sum.TotalRecords)
	}
	if sum.TotalUnitsSold != 8 {
		t.Fatalf("totalUnitsSold = %d, want 8", sum.TotalUnitsSold)
	}
	if sum.TotalAmount != 412 {
		t.Fatalf("totalAmount = %v, want 412", sum.TotalAmount)
	}
	if sum.TotalDiscount != 18 {
		t.Fatalf("totalDiscount = %v, want 18", sum.TotalDiscount)
	}
}

func TestSummaryFiltered(t *testing.T) {
	svc, _ := newFixtureService()

	sum, err := svc.Summary(context.Background(), RawQuery{Region: "North"})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if sum.TotalRecords != 2 || sum.TotalUnitsSold != 3 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestExportSortedAndUnpaginated(t *testing.T) {
	svc, _ := newFixtureService()

	records, err := svc.Export(context.Background(), RawQuery{SortBy: "quantity", SortOrder: "desc", Limit: "1"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected all 3 records, got %d", len(records))
	}
	if records[0].TransactionID != "TXN-B" {
		t.Fatalf("expected highest quantity first, got %s", records[0].TransactionID)
	}
}

func TestReload(t *testing.T) {
	svc, store := newFixtureService()

	snapshot, count, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if store.resets != 1 {
		t.Fatalf("expected 1 reset, got %d", store.resets)
	}
	if store.loads != 1 {
		t.Fatalf("expected 1 load, got %d", store.loads)
	}
	if snapshot != "snap-1" || count != 3 {
		t.Fatalf("reload = %q/%d, want snap-1/3", snapshot, count)
	}
}

func TestFilteredVacuousSharesSnapshot(t *testing.T) {
	svc, store := newFixtureService()

	page, err := svc.ListTransactions(context.Background(), RawQuery{Limit: "100"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Data) != len(store.records) {
		t.Fatalf("expected the whole set, got %d records", len(page.Data))
	}
}
