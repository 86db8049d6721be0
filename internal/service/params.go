package service

import (
	"strconv"
	"strings"

	"github.com/arvind/retailscope/internal/domain"
)

// RawQuery carries query-string parameters exactly as received. Parsing is
// deliberately lenient: garbage values coerce to defaults instead of being
// rejected, so the dashboard never sees a 4xx for a malformed filter.
type RawQuery struct {
	Search        string
	Region        string
	Gender        string
	AgeMin        string
	AgeMax        string
	Category      string
	Tags          string
	PaymentMethod string
	DateFrom      string
	DateTo        string
	Page          string
	Limit         string
	SortBy        string
	SortOrder     string
}

const (
	defaultPage      = 1
	defaultLimit     = 10
	defaultSortBy    = "date"
	defaultSortOrder = "desc"
)

// Filter converts the raw parameters into a filter specification.
// Multi-value fields are comma-separated with empty tokens dropped.
func (q RawQuery) Filter() domain.Filter {
	return domain.Filter{
		Search:         q.Search,
		Regions:        splitList(q.Region),
		Genders:        splitList(q.Gender),
		AgeMin:         parseIntPtr(q.AgeMin),
		AgeMax:         parseIntPtr(q.AgeMax),
		Categories:     splitList(q.Category),
		Tags:           splitList(q.Tags),
		PaymentMethods: splitList(q.PaymentMethod),
		DateFrom:       q.DateFrom,
		DateTo:         q.DateTo,
	}
}

func (q RawQuery) page() int {
	return parseIntOr(q.Page, defaultPage)
}

func (q RawQuery) limit() int {
	limit := parseIntOr(q.Limit, defaultLimit)
	if limit < 1 {
		// A non-positive limit would make totalPages undefined.
		limit = defaultLimit
	}
	return limit
}

func (q RawQuery) sortBy() string {
	if q.SortBy == "" {
		return defaultSortBy
	}
	return q.SortBy
}

func (q RawQuery) sortOrder() string {
	if q.SortOrder == "" {
		return defaultSortOrder
	}
	return q.SortOrder
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// parseIntOr returns the fallback for unset, unparseable, or zero values.
func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

// parseIntPtr returns nil for unset or unparseable values, leaving the
// corresponding bound open.
func parseIntPtr(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
