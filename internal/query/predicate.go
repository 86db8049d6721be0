// Package query implements the record-scan pipeline: predicate evaluation,
// sorting, and facet extraction. Everything here is a pure function over
// immutable records; the same implementation backs the HTTP server and the
// offline inspect tool.
package query

import (
	"strings"
	"time"

	"github.com/arvind/retailscope/internal/domain"
)

// Predicate is a filter specification compiled once per query so that
// scanning a million records does not re-parse bounds or rebuild lookup
// sets per record.
type Predicate struct {
	search         string
	regions        map[string]struct{}
	genders        map[string]struct{}
	categories     map[string]struct{}
	paymentMethods map[string]struct{}
	tags           []string

	ageMin *int
	ageMax *int

	hasDateBounds bool
	from          time.Time
	fromOK        bool
	to            time.Time
	toOK          bool
}

// NewPredicate compiles a filter specification.
func NewPredicate(f domain.Filter) *Predicate {
	p := &Predicate{
		search:         strings.ToLower(strings.TrimSpace(f.Search)),
		regions:        toSet(f.Regions),
		genders:        toSet(f.Genders),
		categories:     toSet(f.Categories),
		paymentMethods: toSet(f.PaymentMethods),
		ageMin:         f.AgeMin,
		ageMax:         f.AgeMax,
	}

	for _, tag := range f.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			p.tags = append(p.tags, tag)
		}
	}

	p.hasDateBounds = f.DateFrom != "" || f.DateTo != ""
	if f.DateFrom != "" {
		p.from, p.fromOK = domain.ParseDate(f.DateFrom)
	}
	if f.DateTo != "" {
		if to, ok := domain.ParseDate(f.DateTo); ok {
			// The upper bound includes the entire final day.
			p.to = endOfDay(to)
			p.toOK = true
		}
	}

	return p
}

// Vacuous reports whether every constraint is empty, in which case the
// predicate admits all records and callers can skip the scan entirely.
func (p *Predicate) Vacuous() bool {
	return p.search == "" &&
		len(p.regions) == 0 &&
		len(p.genders) == 0 &&
		len(p.categories) == 0 &&
		len(p.paymentMethods) == 0 &&
		len(p.tags) == 0 &&
		p.ageMin == nil &&
		p.ageMax == nil &&
		!p.hasDateBounds
}

// Matches reports whether a record satisfies every predicate of the
// compiled specification. Evaluation is AND-short-circuit in a fixed order:
// search, region, gender, age range, category, tags, payment method, date
// range.
func (p *Predicate) Matches(t *domain.Transaction) bool {
	if !p.matchesSearch(t) {
		return false
	}
	if !member(p.regions, t.CustomerRegion) {
		return false
	}
	if !member(p.genders, t.Gender) {
		return false
	}
	if !p.matchesAge(t.Age) {
		return false
	}
	if !member(p.categories, t.ProductCategory) {
		return false
	}
	if !p.matchesTags(t) {
		return false
	}
	if !member(p.paymentMethods, t.PaymentMethod) {
		return false
	}
	return p.matchesDate(t)
}

// Matches evaluates a single record against an uncompiled filter
// specification. Callers scanning many records should compile once with
// NewPredicate instead.
func Matches(t *domain.Transaction, f domain.Filter) bool {
	return NewPredicate(f).Matches(t)
}

func (p *Predicate) matchesSearch(t *domain.Transaction) bool {
	if p.search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.CustomerName), p.search) ||
		strings.Contains(strings.ToLower(t.PhoneNumber), p.search)
}

func (p *Predicate) matchesAge(age int) bool {
	if p.ageMin != nil && age < *p.ageMin {
		return false
	}
	if p.ageMax != nil && age > *p.ageMax {
		return false
	}
	return true
}

// matchesTags uses OR semantics within the tag constraint, unlike the AND
// composition across filter categories: any desired tag present in the
// record's tag set is a match.
func (p *Predicate) matchesTags(t *domain.Transaction) bool {
	if len(p.tags) == 0 {
		return true
	}
	for _, want := range p.tags {
		for _, have := range t.TagTokens {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

func (p *Predicate) matchesDate(t *domain.Transaction) bool {
	if !p.hasDateBounds {
		// No bounds set: vacuously true even for unparseable record dates.
		return true
	}
	if !t.TimestampOK {
		return false
	}
	if p.fromOK && t.Timestamp.Before(p.from) {
		return false
	}
	if p.toOK && t.Timestamp.After(p.to) {
		return false
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// member reports set membership, vacuously true for an empty constraint.
func member(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
