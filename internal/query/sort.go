package query

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/arvind/retailscope/internal/domain"
)

// Sortable field names accepted by Sort. Anything else is treated as "no
// sort requested", not an error.
const (
	SortByDate         = "date"
	SortByQuantity     = "quantity"
	SortByCustomerName = "customerName"
)

// Sort returns a new, stably ordered copy of records. The input is never
// mutated; an unsupported field returns the input unchanged.
//
// The date field is a deliberate quirk carried over from the dashboard's
// original behaviour: its natural comparator is newest-first, so
// order="desc" keeps newest-first and order="asc" inverts to oldest-first.
// Every other field sorts ascending naturally and "desc" inverts it. Do not
// "fix" this without a coordinated frontend change.
func Sort(records []domain.Transaction, field, order string) []domain.Transaction {
	cmp := comparator(field)
	if cmp == nil {
		return records
	}

	invert := (order == "desc" && field != SortByDate) ||
		(order == "asc" && field == SortByDate)

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		c := cmp(&a, &b)
		if invert {
			return -c
		}
		return c
	})
	return sorted
}

func comparator(field string) func(a, b *domain.Transaction) int {
	switch field {
	case SortByDate:
		// Unparseable dates compare as the zero timestamp, grouping them
		// at the old end of the sequence.
		return func(a, b *domain.Transaction) int {
			return b.Timestamp.Compare(a.Timestamp)
		}
	case SortByQuantity:
		return func(a, b *domain.Transaction) int {
			switch {
			case a.Quantity < b.Quantity:
				return -1
			case a.Quantity > b.Quantity:
				return 1
			default:
				return 0
			}
		}
	case SortByCustomerName:
		coll := collate.New(language.English, collate.IgnoreCase)
		return func(a, b *domain.Transaction) int {
			return coll.CompareString(a.CustomerName, b.CustomerName)
		}
	default:
		return nil
	}
}
