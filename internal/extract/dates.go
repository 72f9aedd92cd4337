package extract

import (
	"time"
)

const dateLayout = "2006-01-02"

// normalizeDate re-parses a candidate date string and returns it in
// YYYY-MM-DD form, or empty when it does not parse. Partial or invalid
// dates are never propagated.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return ""
	}
	return t.Format(dateLayout)
}

// ParseDate converts a normalized date string to a time value, nil when
// empty or unparsable.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
