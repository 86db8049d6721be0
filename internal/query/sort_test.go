package query

import (
	"testing"

	"github.com/arvind/retailscope/internal/domain"
)

func datedRecords() []domain.Transaction {
	mk := func(id, date string, quantity int, name string) domain.Transaction {
		t := domain.Transaction{TransactionID: id, Date: date, Quantity: quantity, CustomerName: name}
		t.Derive()
		return t
	}
	return []domain.Transaction{
		mk("TXN-A", "2024-01-01", 5, "meera"),
		mk("TXN-B", "2024-06-01", 1, "Arjun"),
		mk("TXN-C", "2024-03-01", 3, "zoya"),
	}
}

func ids(records []domain.Transaction) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.TransactionID
	}
	return out
}

func assertOrder(t *testing.T, got []domain.Transaction, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].TransactionID != want[i] {
			t.Fatalf("position %d: expected %s, got %v", i, want[i], ids(got))
		}
	}
}

func TestSortDate(t *testing.T) {
	records := datedRecords()

	// Descending date is newest-first; ascending inverts to oldest-first.
	assertOrder(t, Sort(records, SortByDate, "desc"), "TXN-B", "TXN-C", "TXN-A")
	assertOrder(t, Sort(records, SortByDate, "asc"), "TXN-A", "TXN-C", "TXN-B")
}

func TestSortDateUnparseableGroupsOld(t *testing.T) {
	records := datedRecords()
	dirty := domain.Transaction{TransactionID: "TXN-D", Date: "not-a-date"}
	dirty.Derive()
	records = append(records, dirty)

	sorted := Sort(records, SortByDate, "desc")
	if sorted[len(sorted)-1].TransactionID != "TXN-D" {
		t.Fatalf("expected unparseable date last in newest-first order, got %v", ids(sorted))
	}
}

func TestSortQuantity(t *testing.T) {
	records := datedRecords()

	assertOrder(t, Sort(records, SortByQuantity, "asc"), "TXN-B", "TXN-C", "TXN-A")
	assertOrder(t, Sort(records, SortByQuantity, "desc"), "TXN-A", "TXN-C", "TXN-B")
}

func TestSortCustomerNameIgnoresCase(t *testing.T) {
	records := datedRecords()

	assertOrder(t, Sort(records, SortByCustomerName, "asc"), "TXN-B", "TXN-A", "TXN-C")
	assertOrder(t, Sort(records, SortByCustomerName, "desc"), "TXN-C", "TXN-A", "TXN-B")
}

func TestSortUnknownFieldIsNoOp(t *testing.T) {
	records := datedRecords()
	sorted := Sort(records, "pricePerUnit", "asc")
	assertOrder(t, sorted, "TXN-A", "TXN-B", "TXN-C")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := datedRecords()
	_ = Sort(records, SortByDate, "desc")
	assertOrder(t, records, "TXN-A", "TXN-B", "TXN-C")
}

func TestSortIsStable(t *testing.T) {
	mk := func(id string, quantity int) domain.Transaction {
		t := domain.Transaction{TransactionID: id, Quantity: quantity}
		t.Derive()
		return t
	}
	records := []domain.Transaction{mk("TXN-1", 2), mk("TXN-2", 2), mk("TXN-3", 1)}

	sorted := Sort(records, SortByQuantity, "asc")
	assertOrder(t, sorted, "TXN-3", "TXN-1", "TXN-2")
}
