package pricing

import (
	"math"

	"heronomics/internal/domain"
)

// CAPM price scaling constants.
const (
	priceFloor       = 50.0
	returnPriceScale = 1000.0
	performanceScale = 100.0
)

// ComputeBasePrice derives the base instrument price via CAPM:
// expectedReturn = riskFree + beta*premium, converted to a price and scaled
// by overall performance. The result is positive for any non-negative
// performance and bounded beta, and strictly increases with both.
func ComputeBasePrice(beta, overallPerformance float64, params domain.MarketParams) float64 {
	expectedReturn := params.RiskFreeRate + beta*params.MarketRiskPremium

	basePrice := priceFloor + expectedReturn*returnPriceScale
	finalPrice := basePrice * (1.0 + overallPerformance/performanceScale)

	return math.Round(finalPrice*100) / 100
}
