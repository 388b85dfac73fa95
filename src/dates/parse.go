package dates

import (
	"errors"
	"strings"
	"time"
)

// timestampLayouts are tried in order. zoned layouts carry their own offset.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05Z07:00", true},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{ISODate, false},
	{"2006/01/02", false},
}

var errEmptyTimestamp = errors.New("empty timestamp")

// -----------------------------------------------------------------------------

// parseTimestamp accepts ISO-8601 style timestamps and plain dates. A naive
// timestamp is returned in UTC with its fields exactly as written.
func parseTimestamp(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, errEmptyTimestamp
	}

	var lastErr error
	for _, l := range timestampLayouts {
		t, err := time.Parse(l.layout, s)
		if err == nil {
			return t, l.zoned, nil
		}
		lastErr = err
	}
	return time.Time{}, false, lastErr
}
