// Package utils provides utility functions for the application.
package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day layout accepted alongside RFC 3339 timestamps
const DateLayout = "2006-01-02"

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// TimeToUTCPtr converts a time pointer to UTC if it's not already
func TimeToUTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// ParseTimestamp parses an RFC 3339 timestamp or a bare date (midnight UTC)
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC3339 or %s", value, DateLayout)
}
