package domain

// Risk levels form a closed enum. Portfolio ids are likewise a fixed set;
// rows outside it are never provisioned.
const (
	RiskLow    = 1
	RiskMedium = 2
	RiskHigh   = 3
)

func ValidRiskLevel(risk int) bool {
	return risk >= RiskLow && risk <= RiskHigh
}

var knownPortfolioIDs = map[string]struct{}{
	"A": {},
	"B": {},
	"C": {},
}

func ValidPortfolioID(id string) bool {
	_, ok := knownPortfolioIDs[id]
	return ok
}
