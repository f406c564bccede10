package timeparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformedInput reports a date string with too few date fields or a
	// time part that is not exactly hour:minute:second.
	ErrMalformedInput = errors.New("malformed date string")
	// ErrUnparsableField reports a date or time field that is not a number.
	ErrUnparsableField = errors.New("unparsable date field")
	// ErrInvalidCalendarDate reports fields outside the calendar, such as
	// month 13 or February 30.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// ParsedDate holds the calendar fields read from a date string.
type ParsedDate struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// String is used by fmt.
func (d ParsedDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Time returns the date as a UTC instant. Fields are validated rather than
// normalized, so 2/30/2024 is an error instead of March 1.
func (d ParsedDate) Time() (time.Time, error) {
	if d.Hour < 0 || d.Hour > 23 || d.Minute < 0 || d.Minute > 59 || d.Second < 0 || d.Second > 59 {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidCalendarDate, d)
	}

	t := time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC)
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidCalendarDate, d)
	}

	return t, nil
}

// UnixMilli returns the date as milliseconds since the Unix epoch.
func (d ParsedDate) UnixMilli() (int64, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// ParseRawDate splits a "M/D/Y" or "M/D/Y H:Min:S" string into its fields.
//
// A date part with fewer than three fields, or a time part without exactly
// three, returns ErrMalformedInput. A field that is not a number makes the
// whole result absent: ParseRawDate returns nil with a nil error.
func ParseRawDate(s string) (*ParsedDate, error) {
	datePart, timePart, hasTime := strings.Cut(s, " ")

	dateFields := strings.Split(datePart, "/")
	if len(dateFields) < 3 {
		return nil, fmt.Errorf("%w %q: expected month/day/year", ErrMalformedInput, s)
	}

	var d ParsedDate
	var ok bool
	if d.Month, ok = parseField(dateFields[0]); !ok {
		return nil, nil
	}
	if d.Day, ok = parseField(dateFields[1]); !ok {
		return nil, nil
	}
	if d.Year, ok = parseField(dateFields[2]); !ok {
		return nil, nil
	}

	if hasTime {
		timeFields := strings.Split(timePart, ":")
		if len(timeFields) != 3 {
			return nil, fmt.Errorf("%w %q: expected hour:minute:second", ErrMalformedInput, s)
		}
		if d.Hour, ok = parseField(timeFields[0]); !ok {
			return nil, nil
		}
		if d.Minute, ok = parseField(timeFields[1]); !ok {
			return nil, nil
		}
		if d.Second, ok = parseField(timeFields[2]); !ok {
			return nil, nil
		}
	}

	return &d, nil
}

// parseField parses a single 16-bit numeric field.
func parseField(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ParseDate parses a "M/D/Y" or "M/D/Y H:Min:S" string, assumed to be UTC,
// into epoch milliseconds. The time defaults to midnight.
//
// When a field is not numeric the result is absent: ok is false and err is
// nil. Structural problems return ErrMalformedInput and out-of-range fields
// return ErrInvalidCalendarDate.
func ParseDate(s string) (ms int64, ok bool, err error) {
	d, err := ParseRawDate(s)
	if err != nil || d == nil {
		return 0, false, err
	}

	ms, err = d.UnixMilli()
	if err != nil {
		return 0, false, err
	}
	return ms, true, nil
}

// ParseDateStrict is like ParseDate but reports an absent result as
// ErrUnparsableField.
func ParseDateStrict(s string) (int64, error) {
	ms, ok, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w in %q", ErrUnparsableField, s)
	}
	return ms, nil
}
