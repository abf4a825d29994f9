package api

import (
	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Durations are stored as 32-bit and feed exact-arithmetic exponentiation,
// so the projection horizon is capped well below either limit.
const maxYears = 1000

// Fields are pointers so missing keys can be told apart from zero values.
type suggestionRequest struct {
	Years     *int     `json:"years"`
	Principal *float64 `json:"principal"`
	Risk      *int     `json:"risk"`
}

type suggestionResponse struct {
	Projections []projectionResponse      `json:"projections"`
	Summary     suggestionSummaryResponse `json:"summary"`
}

type projectionResponse struct {
	Portfolio     string  `json:"portfolio"`
	MinimumReturn float64 `json:"minimumReturn"`
	MaximumReturn float64 `json:"maximumReturn"`
	Recommended   bool    `json:"recommended,omitempty"`
}

type suggestionSummaryResponse struct {
	MeanMaximumReturn   float64 `json:"meanMaximumReturn"`
	MedianMaximumReturn float64 `json:"medianMaximumReturn"`
}

func (m ApiHandler) suggestion(c *gin.Context) {
	var requestBody suggestionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(apperrors.ValidationError{Reason: "request body must be valid JSON"}, c)
		return
	}

	if err := validateSuggestionRequest(requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	suggestion, err := m.SuggestionService.Suggest(
		c.Request.Context(),
		decimal.NewFromFloat(*requestBody.Principal),
		*requestBody.Risk,
		*requestBody.Years,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, suggestionResponseFromDomain(*suggestion))
}

func validateSuggestionRequest(r suggestionRequest) error {
	if r.Years == nil {
		return apperrors.ValidationError{Reason: "years is required"}
	}
	if r.Principal == nil {
		return apperrors.ValidationError{Reason: "principal is required"}
	}
	if r.Risk == nil {
		return apperrors.ValidationError{Reason: "risk is required"}
	}
	if *r.Years < 0 {
		return apperrors.ValidationError{Reason: "years must be >= 0"}
	}
	if *r.Years > maxYears {
		return apperrors.ValidationError{Reason: "years must be <= 1000"}
	}
	if *r.Principal < 0 {
		return apperrors.ValidationError{Reason: "principal must be >= 0"}
	}
	if !domain.ValidRiskLevel(*r.Risk) {
		return apperrors.ValidationError{Reason: "risk must be one of 1, 2, 3"}
	}
	return nil
}

func suggestionResponseFromDomain(in domain.Suggestion) suggestionResponse {
	projections := []projectionResponse{}
	for _, p := range in.Projections {
		projections = append(projections, projectionResponse{
			Portfolio:     p.PortfolioID,
			MinimumReturn: p.MinimumReturn.InexactFloat64(),
			MaximumReturn: p.MaximumReturn.InexactFloat64(),
			Recommended:   p.Recommended,
		})
	}

	return suggestionResponse{
		Projections: projections,
		Summary: suggestionSummaryResponse{
			MeanMaximumReturn:   in.Summary.MeanMaximumReturn,
			MedianMaximumReturn: in.Summary.MedianMaximumReturn,
		},
	}
}
