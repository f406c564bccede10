package timeparse

import (
	"errors"
	"fmt"
	"time"
)

// ParseTime parses the date formats accepted on the command line, in UTC.
// Supported formats:
//   - M/D/Y and M/D/Y H:Min:S (see ParseDateStrict)
//   - YYYY-MM-DD (assumes 00:00:00 UTC)
//   - YYYY-MM-DD HH:MM:SS (UTC)
//   - RFC3339: 2018-10-27T10:00:00Z (can specify any timezone)
//
// Slash dates with invalid calendar fields are reported as such rather than
// falling through to the other formats.
func ParseTime(s string) (time.Time, error) {
	ms, err := ParseDateStrict(s)
	if err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	if errors.Is(err, ErrInvalidCalendarDate) {
		return time.Time{}, err
	}

	for _, layout := range []string{time.DateOnly, time.DateTime, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected M/D/Y, M/D/Y H:M:S, YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)", s)
}
