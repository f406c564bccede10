// Package timefmt formats millisecond durations using %-delimited templates.
//
// A placeholder has the form %<pad><alias>% where <pad> is any run of '0' and
// '#' characters, optionally prefixed with '*', and <alias> is any unit name
// or alias known to the timeunit package. The number of '0' characters sets
// the minimum digit count. A leading '*' hides the placeholder when its value
// is zero. The alias text is repeated after the number in the output:
//
//	%00h%:%00m%:%00s%   9030000 -> 02h:30m:30s
//	%*0d% %00h%         3600000 -> " 01h"
package timefmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/jparise/gh-chrono/internal/timeunit"
)

// Placeholder is a compiled %...% fragment bound to a single unit.
type Placeholder struct {
	Alias      string // unit text as written, used as the output suffix
	Pad        string // number pattern as written, including any '*'
	ShowIfZero bool
}

// literal returns the placeholder text as it appears in the template.
func (p Placeholder) literal() string {
	return "%" + p.Pad + p.Alias + "%"
}

// format renders n with the placeholder's zero padding and unit suffix.
func (p Placeholder) format(n int64) string {
	if n == 0 && !p.ShowIfZero {
		return ""
	}
	width := strings.Count(p.Pad, "0")
	digits := strconv.FormatInt(n, 10)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return digits + p.Alias
}

// Template is a compiled pattern. It is immutable and safe for concurrent use.
type Template struct {
	pattern      string
	placeholders map[timeunit.Unit]Placeholder
}

type scanState int

const (
	outside scanState = iota
	inPad
	inAlias
)

// Compile parses pattern into a Template. Compilation never fails:
// placeholders naming an unknown unit are dropped, as is an unterminated
// placeholder at the end of the pattern. Only the last placeholder for a
// given unit is kept.
func Compile(pattern string) *Template {
	t := &Template{
		pattern:      pattern,
		placeholders: make(map[timeunit.Unit]Placeholder),
	}

	state := outside
	var pad, alias strings.Builder
	for _, c := range pattern {
		if c == '%' {
			if state == outside {
				state = inPad
				continue
			}

			if unit, ok := timeunit.Match(strings.TrimSpace(alias.String())); ok {
				t.placeholders[unit] = Placeholder{
					Alias:      alias.String(),
					Pad:        pad.String(),
					ShowIfZero: !strings.HasPrefix(pad.String(), "*"),
				}
			}
			state = outside
			pad.Reset()
			alias.Reset()
			continue
		}

		if state == outside {
			continue
		}

		// Pad characters are collected even after the alias has started,
		// which yields a literal that never appears in the pattern.
		if c == '0' || c == '#' || c == '*' {
			pad.WriteRune(c)
		} else {
			alias.WriteRune(c)
			state = inAlias
		}
	}

	return t
}

// WithPattern returns a new Template compiled from pattern. The receiver is
// left unchanged.
func (t *Template) WithPattern(pattern string) *Template {
	return Compile(pattern)
}

// Pattern returns the template text as given to Compile.
func (t *Template) Pattern() string {
	return t.pattern
}

// Placeholder returns the compiled placeholder for unit, if any.
func (t *Template) Placeholder(unit timeunit.Unit) (Placeholder, bool) {
	p, ok := t.placeholders[unit]
	return p, ok
}

// Units returns the units referenced by the template, largest first.
func (t *Template) Units() []timeunit.Unit {
	var units []timeunit.Unit
	for _, unit := range timeunit.Ordered(true) {
		if _, ok := t.placeholders[unit]; ok {
			units = append(units, unit)
		}
	}
	return units
}

// Format renders ms through the template. Each referenced unit takes as
// many whole units as fit in the remaining value, largest unit first, so a
// template without days may show more than 23 hours.
//
// Negative values are rendered as their absolute value prefixed with '-'.
func (t *Template) Format(ms int64) string {
	var sign string
	if ms < 0 {
		sign = "-"
		if ms == math.MinInt64 {
			ms = math.MaxInt64
		} else {
			ms = -ms
		}
	}

	out := t.pattern
	remaining := ms
	for _, unit := range t.Units() {
		p := t.placeholders[unit]
		per := unit.Millis()
		n := remaining / per
		remaining %= per
		out = strings.ReplaceAll(out, p.literal(), p.format(n))
	}

	return sign + out
}
