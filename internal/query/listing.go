// Package query turns request parameters into store-independent filters.
package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/salesboard/backend/internal/types"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10

	// DefaultListingMonth is used by the transaction listing when no
	// or an unknown month is requested. The reports use DefaultReportMonth.
	DefaultListingMonth = time.February
	DefaultReportMonth  = time.March
)

// Listing is a paginated, searchable query for the transactions of one month.
type Listing struct {
	Page    int
	PerPage int
	Search  string
	Month   types.Month
}

// NewListing coerces raw query string values into a Listing.
//
// Values that cannot be parsed fall back to their defaults.
func NewListing(page, perPage, search, month string) Listing {
	return Listing{
		Page:    PositiveInt(page, DefaultPage),
		PerPage: PositiveInt(perPage, DefaultPerPage),
		Search:  search,
		Month:   types.ParseMonthName(month, DefaultListingMonth),
	}
}

// ReportMonth resolves the month parameter of the report endpoints.
func ReportMonth(month string) types.Month {
	return types.ParseMonthName(month, DefaultReportMonth)
}

// PositiveInt parses s as a base 10 integer >= 1, returning fallback otherwise.
func PositiveInt(s string, fallback int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 {
		return fallback
	}

	return i
}

// Skip is the number of records before the requested page.
//
// Pages too far out for an int saturate at math.MaxInt, which is
// past the end of any result.
func (l Listing) Skip() int {
	if l.Page <= 1 || l.PerPage <= 0 {
		return 0
	}

	if l.Page-1 > math.MaxInt/l.PerPage {
		return math.MaxInt
	}

	return (l.Page - 1) * l.PerPage
}

// Limit is the maximum number of records on the page.
func (l Listing) Limit() int {
	return l.PerPage
}

// SearchPrice is the lower price bound that matches the search.
//
// It is 0 for empty, non-numeric or non-finite searches, so in that
// case every record with a non-negative price matches.
func (l Listing) SearchPrice() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(l.Search), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// LikePattern is the search as an SQL LIKE pattern matching any text
// that contains it. Wildcards in the search are escaped with a backslash.
func (l Listing) LikePattern() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(l.Search) + "%"
}

// RegexPattern is the search quoted for use as a regular expression.
func (l Listing) RegexPattern() string {
	return regexp.QuoteMeta(l.Search)
}
