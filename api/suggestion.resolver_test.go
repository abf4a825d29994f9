package api

import (
	"testing"

	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func intPointer(i int) *int {
	return &i
}

func float64Pointer(f float64) *float64 {
	return &f
}

func Test_validateSuggestionRequest(t *testing.T) {
	valid := suggestionRequest{
		Years:     intPointer(10),
		Principal: float64Pointer(100),
		Risk:      intPointer(2),
	}

	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, validateSuggestionRequest(valid))
	})

	t.Run("missing fields", func(t *testing.T) {
		for name, r := range map[string]suggestionRequest{
			"years":     {Principal: valid.Principal, Risk: valid.Risk},
			"principal": {Years: valid.Years, Risk: valid.Risk},
			"risk":      {Years: valid.Years, Principal: valid.Principal},
		} {
			err := validateSuggestionRequest(r)

			var validationErr apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr, "missing %s", name)
		}
	})

	t.Run("negative years", func(t *testing.T) {
		r := valid
		r.Years = intPointer(-1)

		var validationErr apperrors.ValidationError
		require.ErrorAs(t, validateSuggestionRequest(r), &validationErr)
	})

	t.Run("years at the cap is accepted, beyond it rejected", func(t *testing.T) {
		r := valid
		r.Years = intPointer(maxYears)
		require.NoError(t, validateSuggestionRequest(r))

		for _, years := range []int{maxYears + 1, 1 << 31} {
			r.Years = intPointer(years)

			var validationErr apperrors.ValidationError
			require.ErrorAs(t, validateSuggestionRequest(r), &validationErr, "years %d", years)
		}
	})

	t.Run("risk outside the closed enum", func(t *testing.T) {
		for _, risk := range []int{0, 4, -1} {
			r := valid
			r.Risk = intPointer(risk)

			var validationErr apperrors.ValidationError
			require.ErrorAs(t, validateSuggestionRequest(r), &validationErr, "risk %d", risk)
		}
	})
}

func Test_suggestionResponseFromDomain(t *testing.T) {
	t.Run("maps projections and drops flag when not recommended", func(t *testing.T) {
		out := suggestionResponseFromDomain(domain.Suggestion{
			Projections: []domain.Projection{
				{
					PortfolioID:   "A",
					MinimumReturn: decimal.NewFromInt(100),
					MaximumReturn: decimal.NewFromInt(200),
				},
				{
					PortfolioID:   "C",
					MinimumReturn: decimal.NewFromInt(100),
					MaximumReturn: decimal.RequireFromString("155.2969421732897124632822265625"),
					Recommended:   true,
				},
			},
			Summary: domain.SuggestionSummary{
				MeanMaximumReturn:   177.5,
				MedianMaximumReturn: 177.5,
			},
		})

		require.Len(t, out.Projections, 2)
		require.Equal(t, "A", out.Projections[0].Portfolio)
		require.False(t, out.Projections[0].Recommended)
		require.True(t, out.Projections[1].Recommended)
		require.InDelta(t, 155.29694217, out.Projections[1].MaximumReturn, 1e-6)
		require.InDelta(t, 177.5, out.Summary.MeanMaximumReturn, 1e-9)
	})

	t.Run("empty suggestion renders empty array", func(t *testing.T) {
		out := suggestionResponseFromDomain(domain.Suggestion{})

		require.NotNil(t, out.Projections)
		require.Empty(t, out.Projections)
	})
}
