// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
)

const (
	// DateTimeLayout is the date format expected in config files and is also
	// the output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AddOneMonth returns the date advanced by exactly one calendar month,
// rolling December over to January of the next year. The day of month is
// preserved; callers are expected to work with first-of-month dates, any
// other day normalizes per time.Date.
func AddOneMonth(date time.Time) time.Time {
	year, month, day := date.Date()
	if month == time.December {
		return time.Date(year+1, time.January, day, 0, 0, 0, 0, date.Location())
	}
	return time.Date(year, month+1, day, 0, 0, 0, 0, date.Location())
}

// ElapsedDays returns the number of whole days between start and current.
func ElapsedDays(start, current time.Time) int {
	return int(current.Sub(start).Hours() / 24)
}

// ElapsedYears returns the coarse number of elapsed years between start and
// current, measured as whole days divided by 365.
func ElapsedYears(start, current time.Time) int {
	return ElapsedDays(start, current) / constants.DaysPerYear
}
