package models

import "math"

// PriceRange is a half-open price interval [Min, Max).
//
// The last range of PriceRanges has an infinite Max.
type PriceRange struct {
	Label string
	Min   float64
	Max   float64
}

// Bounded reports whether the range has an upper bound.
func (p PriceRange) Bounded() bool {
	return !math.IsInf(p.Max, 1)
}

// PriceRanges are the buckets of the price histogram, in display order.
var PriceRanges = []PriceRange{
	{Label: "0-100", Min: 0, Max: 100},
	{Label: "101-200", Min: 100, Max: 200},
	{Label: "201-300", Min: 200, Max: 300},
	{Label: "301-400", Min: 300, Max: 400},
	{Label: "401-500", Min: 400, Max: 500},
	{Label: "501-600", Min: 500, Max: 600},
	{Label: "601-700", Min: 600, Max: 700},
	{Label: "701-800", Min: 700, Max: 800},
	{Label: "801-900", Min: 800, Max: 900},
	{Label: "901-above", Min: 900, Max: math.Inf(1)},
}
