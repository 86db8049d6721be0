package domain

import (
	"strings"
	"time"
)

// Dataset dates are "ISO-ish": anything from a bare day up to a full
// RFC3339 timestamp has been observed in source files.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a dataset date string. The second return value reports
// whether the string was parseable; callers must treat unparseable dates
// per the filter rules rather than propagate errors.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SplitTags splits a comma-separated tag field into trimmed, non-empty
// tokens. A field of "sale, new" contributes both "sale" and "new".
func SplitTags(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Derive populates the load-time derived fields from Date and Tags. The
// store calls this once per record after decoding.
func (t *Transaction) Derive() {
	t.Timestamp, t.TimestampOK = ParseDate(t.Date)
	t.TagTokens = SplitTags(t.Tags)
}
