package utils

import (
	"fmt"
	"time"
)

const DayFormat = "2006-01-02"

// ParseDay parses a strict YYYY-MM-DD date string.
func ParseDay(dateStr string) (time.Time, error) {
	t, err := time.Parse(DayFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return t, nil
}

// ParseTimestamp accepts either a bare YYYY-MM-DD date or a full RFC3339
// timestamp, which is what the dashboard sends for transaction dates.
func ParseTimestamp(dateStr string) (time.Time, error) {
	if t, err := time.Parse(DayFormat, dateStr); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339: %w", dateStr, err)
	}
	return t, nil
}
