package api

import (
	"testing"

	"roboadvisor/internal/apperrors"

	"github.com/stretchr/testify/require"
)

func Test_validateCreateInvestmentRequest(t *testing.T) {
	portfolioA := "A"
	portfolioZ := "Z"

	valid := createInvestmentRequest{
		Years:     intPointer(10),
		Principal: float64Pointer(100),
		Portfolio: &portfolioA,
	}

	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, validateCreateInvestmentRequest(valid))
	})

	t.Run("missing fields", func(t *testing.T) {
		for name, r := range map[string]createInvestmentRequest{
			"years":     {Principal: valid.Principal, Portfolio: valid.Portfolio},
			"principal": {Years: valid.Years, Portfolio: valid.Portfolio},
			"portfolio": {Years: valid.Years, Principal: valid.Principal},
		} {
			err := validateCreateInvestmentRequest(r)

			var validationErr apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr, "missing %s", name)
		}
	})

	t.Run("unknown portfolio id", func(t *testing.T) {
		r := valid
		r.Portfolio = &portfolioZ

		var validationErr apperrors.ValidationError
		require.ErrorAs(t, validateCreateInvestmentRequest(r), &validationErr)
	})

	t.Run("negative years", func(t *testing.T) {
		r := valid
		r.Years = intPointer(-3)

		var validationErr apperrors.ValidationError
		require.ErrorAs(t, validateCreateInvestmentRequest(r), &validationErr)
	})

	t.Run("years at the cap is accepted, beyond it rejected", func(t *testing.T) {
		r := valid
		r.Years = intPointer(maxYears)
		require.NoError(t, validateCreateInvestmentRequest(r))

		for _, years := range []int{maxYears + 1, 1 << 31} {
			r.Years = intPointer(years)

			var validationErr apperrors.ValidationError
			require.ErrorAs(t, validateCreateInvestmentRequest(r), &validationErr, "years %d", years)
		}
	})
}

func Test_validateUsername(t *testing.T) {
	t.Run("empty username", func(t *testing.T) {
		var validationErr apperrors.ValidationError
		require.ErrorAs(t, validateUsername(""), &validationErr)
	})

	t.Run("oversized username", func(t *testing.T) {
		long := make([]byte, 65)
		for i := range long {
			long[i] = 'a'
		}

		var validationErr apperrors.ValidationError
		require.ErrorAs(t, validateUsername(string(long)), &validationErr)
	})

	t.Run("ordinary username", func(t *testing.T) {
		require.NoError(t, validateUsername("ada"))
	})
}
