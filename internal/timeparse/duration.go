// Package timeparse provides lenient duration and date parsing into
// millisecond values.
package timeparse

import (
	"math"
	"strconv"
	"strings"

	"github.com/jparise/gh-chrono/internal/timeunit"
)

// ParseDuration parses a free-form duration string such as "2h30m" or
// "1y 3mo" into milliseconds. Matching is case-insensitive and units are
// extracted largest first: years, months, weeks, days, hours, minutes and
// seconds. Each unit is read at most once.
//
// Parsing is best effort and never fails. Units that are missing, or whose
// alias is not preceded by digits, contribute nothing, so an empty or
// unrecognized string yields 0. The total saturates at the int64 range.
func ParseDuration(s string) int64 {
	rest := strings.ToLower(s)

	var total int64
	for _, unit := range timeunit.DurationUnits() {
		var ms int64
		ms, rest = extract(rest, unit)
		total = addSaturating(total, ms)
	}

	return total
}

// extract removes the first "<number><alias>" token for unit from s and
// returns its value in milliseconds along with the leftover input. Only the
// first alias of unit found anywhere in s is considered.
func extract(s string, unit timeunit.Unit) (int64, string) {
	for _, alias := range unit.Aliases() {
		i := strings.Index(s, alias)
		if i < 0 {
			continue
		}

		prefix := s[:i]
		start := 0
		n, err := strconv.ParseInt(prefix, 10, 32)
		if err != nil {
			// The prefix still holds text from other units; use the digits
			// that immediately precede the alias.
			start = len(prefix)
			for start > 0 && prefix[start-1] >= '0' && prefix[start-1] <= '9' {
				start--
			}
			if start == len(prefix) {
				return 0, s
			}
			n, err = strconv.ParseInt(prefix[start:], 10, 32)
			if err != nil {
				return 0, s
			}
		}

		end := i + len(alias)
		return mulSaturating(n, unit.Millis()), s[:start] + s[end:]
	}

	return 0, s
}

func mulSaturating(n, per int64) int64 {
	if n > math.MaxInt64/per {
		return math.MaxInt64
	}
	if n < math.MinInt64/per {
		return math.MinInt64
	}
	return n * per
}

func addSaturating(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	default:
		return a + b
	}
}
