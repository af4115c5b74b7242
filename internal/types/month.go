// Package types implements the calendar types used to scope queries.
package types

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ReportingYear is the year all month names resolve to.
const ReportingYear = 2023

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// LookupMonth resolves an english month name, ignoring case and surrounding whitespace.
func LookupMonth(name string) (time.Month, bool) {
	m, ok := monthNames[cases.Fold().String(strings.TrimSpace(name))]
	return m, ok
}

// ParseMonthName returns the month called name in the reporting year.
//
// Empty and unknown names resolve to fallback instead of failing.
func ParseMonthName(name string, fallback time.Month) Month {
	m, ok := LookupMonth(name)
	if !ok {
		m = fallback
	}

	return NewMonth(ReportingYear, m)
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Start is the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End is the first instant of the following month.
func (m Month) End() time.Time {
	return time.Time(m.AddDate(0, 1))
}

// Range returns the half-open interval [Start, End) covering the month.
func (m Month) Range() (time.Time, time.Time) {
	return m.Start(), m.End()
}
