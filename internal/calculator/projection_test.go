package calculator

import (
	"testing"

	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	t.Run("compounds over the full duration", func(t *testing.T) {
		out := Project(decimal.NewFromInt(100), 10, decimal.NewFromFloat(0.045))

		require.True(
			t,
			decimal.RequireFromString("155.2969421732897124632822265625").Equal(out),
			"got %s", out,
		)
	})

	t.Run("zero duration returns the principal", func(t *testing.T) {
		out := Project(decimal.NewFromInt(250), 0, decimal.NewFromFloat(0.12))

		require.True(t, decimal.NewFromInt(250).Equal(out))
	})

	t.Run("zero rate returns the principal", func(t *testing.T) {
		out := Project(decimal.NewFromInt(100), 10, decimal.Zero)

		require.True(t, decimal.NewFromInt(100).Equal(out))
	})

	t.Run("negative rate shrinks the principal", func(t *testing.T) {
		out := Project(decimal.NewFromInt(100), 10, decimal.NewFromFloat(-0.05))

		require.True(
			t,
			decimal.RequireFromString("59.873693923837890625").Equal(out),
			"got %s", out,
		)
	})

	t.Run("five percent over five years", func(t *testing.T) {
		out := Project(decimal.NewFromInt(1000), 5, decimal.NewFromFloat(0.05))

		require.True(
			t,
			decimal.RequireFromString("1276.2815625").Equal(out),
			"got %s", out,
		)
	})

	t.Run("non-decreasing in rate", func(t *testing.T) {
		principal := decimal.NewFromInt(100)
		rates := []decimal.Decimal{
			decimal.NewFromFloat(-0.5),
			decimal.NewFromFloat(-0.05),
			decimal.Zero,
			decimal.NewFromFloat(0.045),
			decimal.NewFromFloat(0.2),
		}

		prev := Project(principal, 10, rates[0])
		for _, rate := range rates[1:] {
			next := Project(principal, 10, rate)
			require.True(t, prev.LessThanOrEqual(next), "projection decreased at rate %s", rate)
			prev = next
		}
	})
}

func TestProjectReturns(t *testing.T) {
	t.Run("applies min and max interest", func(t *testing.T) {
		portfolio := model.Portfolio{
			ID:          "C",
			MinInterest: 0,
			MaxInterest: 0.045,
			RiskLevel:   2,
		}

		out := ProjectReturns(decimal.NewFromInt(100), 10, portfolio)

		require.True(t, decimal.NewFromInt(100).Equal(out.Minimum), "got %s", out.Minimum)
		require.True(
			t,
			decimal.RequireFromString("155.2969421732897124632822265625").Equal(out.Maximum),
			"got %s", out.Maximum,
		)
	})

	t.Run("minimum never exceeds maximum", func(t *testing.T) {
		portfolios := []model.Portfolio{
			{ID: "A", MinInterest: 0.1, MaxInterest: 0.2, RiskLevel: 1},
			{ID: "B", MinInterest: -0.05, MaxInterest: 0.05, RiskLevel: 3},
			{ID: "C", MinInterest: 0, MaxInterest: 0.045, RiskLevel: 2},
		}

		for _, p := range portfolios {
			out := ProjectReturns(decimal.NewFromInt(100), 10, p)
			require.True(t, out.Minimum.LessThanOrEqual(out.Maximum), "portfolio %s", p.ID)
		}
	})
}
