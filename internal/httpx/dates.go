package httpx

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// ParseDate parses a wire-format date: plain YYYY-MM-DD or RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dayFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", s)
}
