package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectedReturns holds the compounded value of a principal at the low and
// high end of a portfolio's interest rate range.
type ProjectedReturns struct {
	Minimum decimal.Decimal
	Maximum decimal.Decimal
}

// Projection is the per-portfolio entry of a suggestion. Recommended is set
// when the portfolio's risk level matches the caller's desired risk.
type Projection struct {
	PortfolioID   string
	MinimumReturn decimal.Decimal
	MaximumReturn decimal.Decimal
	Recommended   bool
}

// Suggestion is the full result of a suggestion request: one projection per
// catalog portfolio, in catalog order, plus summary stats over the catalog.
type Suggestion struct {
	Projections []Projection
	Summary     SuggestionSummary
}

type SuggestionSummary struct {
	MeanMaximumReturn   float64
	MedianMaximumReturn float64
}
