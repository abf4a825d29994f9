package api

import (
	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/domain"

	"github.com/gin-gonic/gin"
)

type createInvestmentRequest struct {
	Years     *int     `json:"years"`
	Principal *float64 `json:"principal"`
	Portfolio *string  `json:"portfolio"`
}

func (m ApiHandler) createInvestment(c *gin.Context) {
	username := c.Param("username")
	if err := validateUsername(username); err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody createInvestmentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(apperrors.ValidationError{Reason: "request body must be valid JSON"}, c)
		return
	}

	if err := validateCreateInvestmentRequest(requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	_, err := m.InvestmentService.Add(
		c.Request.Context(),
		username,
		*requestBody.Principal,
		*requestBody.Years,
		*requestBody.Portfolio,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(202, map[string]string{
		"message": "investment accepted",
	})
}

func validateCreateInvestmentRequest(r createInvestmentRequest) error {
	if r.Years == nil {
		return apperrors.ValidationError{Reason: "years is required"}
	}
	if r.Principal == nil {
		return apperrors.ValidationError{Reason: "principal is required"}
	}
	if r.Portfolio == nil {
		return apperrors.ValidationError{Reason: "portfolio is required"}
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
	if !domain.ValidPortfolioID(*r.Portfolio) {
		return apperrors.ValidationError{Reason: "portfolio must be one of A, B, C"}
	}
	return nil
}
