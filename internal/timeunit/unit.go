// Package timeunit defines the fixed table of time units shared by the
// duration parser and the template formatter.
package timeunit

import (
	"slices"
	"strings"
)

// Unit identifies a time unit. Values are ordered by magnitude.
type Unit int

const (
	Milliseconds Unit = iota
	Ticks
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour

	// daysPerWeek is the average number of weeks in a month, expressed in
	// days, so that four "weeks" do not add up to a month.
	daysPerWeek = 7.604166666666667
	// daysPerMonth is the average month length of a 365-day year.
	daysPerMonth = 30.41666667
	daysPerYear  = 365
)

// descriptor describes a single unit in the table.
type descriptor struct {
	name    string
	aliases []string
	millis  int64
}

// table is indexed by Unit and is never modified after initialization.
var table = [...]descriptor{
	Milliseconds: {name: "milliseconds", aliases: []string{"millisecond", "ms"}, millis: 1},
	Ticks:        {name: "ticks", aliases: []string{"tick", "t"}, millis: 50},
	Seconds:      {name: "seconds", aliases: []string{"second", "s"}, millis: msPerSecond},
	Minutes:      {name: "minutes", aliases: []string{"minute", "min", "m"}, millis: msPerMinute},
	Hours:        {name: "hours", aliases: []string{"hour", "h"}, millis: msPerHour},
	Days:         {name: "days", aliases: []string{"day", "d"}, millis: msPerDay},
	Weeks:        {name: "weeks", aliases: []string{"week", "w"}, millis: fromDays(daysPerWeek)},
	Months:       {name: "months", aliases: []string{"month", "mo"}, millis: fromDays(daysPerMonth)},
	Years:        {name: "years", aliases: []string{"year", "y"}, millis: daysPerYear * msPerDay},
}

// fromDays converts a fractional day count to whole milliseconds, truncating
// any sub-millisecond remainder.
func fromDays(days float64) int64 {
	return int64(days * float64(msPerDay))
}

// All returns every unit in declaration (ascending magnitude) order.
func All() []Unit {
	units := make([]Unit, len(table))
	for i := range table {
		units[i] = Unit(i)
	}
	return units
}

// Ordered returns all units sorted by magnitude, largest first when
// descending is true.
func Ordered(descending bool) []Unit {
	units := All()
	if descending {
		slices.Reverse(units)
	}
	return units
}

// DurationUnits returns the units extracted from duration strings, largest
// first. Milliseconds and ticks are never parsed from free-form text.
func DurationUnits() []Unit {
	return []Unit{Years, Months, Weeks, Days, Hours, Minutes, Seconds}
}

// Match resolves a unit name or alias, ignoring case. Units are scanned in
// declaration order and the first match wins.
func Match(token string) (Unit, bool) {
	for i, d := range table {
		if strings.EqualFold(d.name, token) {
			return Unit(i), true
		}
		for _, alias := range d.aliases {
			if strings.EqualFold(alias, token) {
				return Unit(i), true
			}
		}
	}
	return 0, false
}

// Valid reports whether u is a member of the unit table.
func (u Unit) Valid() bool {
	return u >= 0 && int(u) < len(table)
}

// Name returns the canonical lowercase name, e.g. "hours".
func (u Unit) Name() string {
	if !u.Valid() {
		return ""
	}
	return table[u].name
}

// String is used by fmt and in CLI output.
func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return table[u].name
}

// Aliases returns a copy of the unit's aliases in match order.
func (u Unit) Aliases() []string {
	if !u.Valid() {
		return nil
	}
	return slices.Clone(table[u].aliases)
}

// Millis returns the number of milliseconds in one unit.
func (u Unit) Millis() int64 {
	if !u.Valid() {
		return 0
	}
	return table[u].millis
}

// ToMillis converts n units to milliseconds.
func (u Unit) ToMillis(n int64) int64 {
	return n * u.Millis()
}

// FromMillis converts a millisecond count to a fractional number of units.
func (u Unit) FromMillis(ms int64) float64 {
	return float64(ms) / float64(u.Millis())
}
