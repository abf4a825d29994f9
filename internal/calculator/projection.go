package calculator

import (
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Project compounds principal over durationPeriods periods at the given
// per-period rate: principal * (1+rate)^durationPeriods. Callers are expected
// to have rejected negative durations before reaching this point.
func Project(principal decimal.Decimal, durationPeriods int, rate decimal.Decimal) decimal.Decimal {
	growth := one.Add(rate).Pow(decimal.NewFromInt(int64(durationPeriods)))
	return principal.Mul(growth)
}

// ProjectReturns applies Project at both ends of the portfolio's interest
// rate range. Minimum <= Maximum holds whenever the portfolio row satisfies
// min_interest <= max_interest and principal >= 0.
func ProjectReturns(principal decimal.Decimal, durationPeriods int, portfolio model.Portfolio) domain.ProjectedReturns {
	return domain.ProjectedReturns{
		Minimum: Project(principal, durationPeriods, decimal.NewFromFloat(portfolio.MinInterest)),
		Maximum: Project(principal, durationPeriods, decimal.NewFromFloat(portfolio.MaxInterest)),
	}
}
