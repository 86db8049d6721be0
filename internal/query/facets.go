package query

import (
	"sort"
	"time"

	"github.com/arvind/retailscope/internal/domain"
)

// Facets derives the filter options for the dashboard in a single linear
// pass over the record set. Categorical outputs are deduplicated and
// lexicographically sorted, so repeated calls over the same records are
// deterministic.
func Facets(records []domain.Transaction) domain.FilterOptions {
	regions := make(map[string]struct{})
	genders := make(map[string]struct{})
	categories := make(map[string]struct{})
	paymentMethods := make(map[string]struct{})
	tags := make(map[string]struct{})

	// Sentinels mirror the observed-range rules: only ages above zero
	// count, and the span collapses to [0,100] when nothing qualifies.
	ageMin, ageMax := 100, 0
	var dateMin, dateMax time.Time
	haveDates := false

	for i := range records {
		t := &records[i]
		if t.CustomerRegion != "" {
			regions[t.CustomerRegion] = struct{}{}
		}
		if t.Gender != "" {
			genders[t.Gender] = struct{}{}
		}
		if t.ProductCategory != "" {
			categories[t.ProductCategory] = struct{}{}
		}
		if t.PaymentMethod != "" {
			paymentMethods[t.PaymentMethod] = struct{}{}
		}
		for _, tag := range t.TagTokens {
			tags[tag] = struct{}{}
		}

		if t.Age > 0 {
			if t.Age < ageMin {
				ageMin = t.Age
			}
			if t.Age > ageMax {
				ageMax = t.Age
			}
		}

		if t.TimestampOK {
			if !haveDates || t.Timestamp.Before(dateMin) {
				dateMin = t.Timestamp
			}
			if !haveDates || t.Timestamp.After(dateMax) {
				dateMax = t.Timestamp
			}
			haveDates = true
		}
	}

	if ageMin == 100 && ageMax == 0 {
		ageMin, ageMax = 0, 100
	}

	options := domain.FilterOptions{
		Regions:        sortedKeys(regions),
		Genders:        sortedKeys(genders),
		Categories:     sortedKeys(categories),
		Tags:           sortedKeys(tags),
		PaymentMethods: sortedKeys(paymentMethods),
		AgeRange:       domain.AgeRange{Min: ageMin, Max: ageMax},
	}
	if haveDates {
		min := dateMin.Format("2006-01-02")
		max := dateMax.Format("2006-01-02")
		options.DateRange = domain.DateRange{Min: &min, Max: &max}
	}
	return options
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
