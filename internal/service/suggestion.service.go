package service

import (
	"context"
	"database/sql"
	"fmt"

	"roboadvisor/internal/calculator"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type SuggestionService interface {
	Suggest(ctx context.Context, principal decimal.Decimal, desiredRisk int, durationYears int) (*domain.Suggestion, error)
}

type suggestionServiceHandler struct {
	Db                  *sql.DB
	PortfolioRepository repository.PortfolioRepository
}

func NewSuggestionService(db *sql.DB, portfolioRepository repository.PortfolioRepository) SuggestionService {
	return suggestionServiceHandler{
		Db:                  db,
		PortfolioRepository: portfolioRepository,
	}
}

// Suggest projects the principal against every portfolio in the catalog, in
// catalog order, and flags each portfolio whose risk level matches the
// caller's desired risk. The catalog is re-read on every call.
func (h suggestionServiceHandler) Suggest(ctx context.Context, principal decimal.Decimal, desiredRisk int, durationYears int) (*domain.Suggestion, error) {
	portfolios, err := h.PortfolioRepository.List(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio catalog: %w", err)
	}

	projections := make([]domain.Projection, 0, len(portfolios))
	maxReturns := make([]float64, 0, len(portfolios))
	for _, portfolio := range portfolios {
		returns := calculator.ProjectReturns(principal, durationYears, portfolio)
		projections = append(projections, domain.Projection{
			PortfolioID:   portfolio.ID,
			MinimumReturn: returns.Minimum,
			MaximumReturn: returns.Maximum,
			Recommended:   int(portfolio.RiskLevel) == desiredRisk,
		})
		maxReturns = append(maxReturns, returns.Maximum.InexactFloat64())
	}

	out := &domain.Suggestion{
		Projections: projections,
	}

	if len(maxReturns) > 0 {
		mean, err := stats.Mean(maxReturns)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean maximum return: %w", err)
		}
		median, err := stats.Median(maxReturns)
		if err != nil {
			return nil, fmt.Errorf("failed to compute median maximum return: %w", err)
		}
		out.Summary = domain.SuggestionSummary{
			MeanMaximumReturn:   mean,
			MedianMaximumReturn: median,
		}
	}

	return out, nil
}
