package api

import (
	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

type getInvestmentsResponse struct {
	Username    string               `json:"username"`
	Investments []investmentResponse `json:"investments"`
}

type investmentResponse struct {
	ID        int32   `json:"id"`
	Portfolio string  `json:"portfolio"`
	Years     int32   `json:"years"`
	Principal float64 `json:"principal"`
}

func (m ApiHandler) getInvestments(c *gin.Context) {
	username := c.Param("username")
	if err := validateUsername(username); err != nil {
		returnErrorJson(err, c)
		return
	}

	investments, err := m.InvestmentService.List(c.Request.Context(), username)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getInvestmentsResponseFromDomain(username, investments))
}

// A user with zero investments renders an empty array, not an error.
func getInvestmentsResponseFromDomain(username string, in []model.Investment) getInvestmentsResponse {
	investments := []investmentResponse{}
	for _, i := range in {
		investments = append(investments, investmentResponse{
			ID:        i.ID,
			Portfolio: i.Portfolio,
			Years:     i.Duration,
			Principal: i.Principal,
		})
	}

	return getInvestmentsResponse{
		Username:    username,
		Investments: investments,
	}
}
