package domain

// MarketParams are the global constants of one simulation run.
type MarketParams struct {
	RiskFreeRate      float64 // annual risk-free rate
	MarketRiskPremium float64 // market risk premium over the risk-free rate
	BaseShareCount    int64   // nominal float before accessibility scaling
	BaseDailyVolume   int64   // nominal daily volume before scaling
	HistoryDays       int     // synthesized history length
}

// DefaultMarketParams returns the standard market constants.
func DefaultMarketParams() MarketParams {
	return MarketParams{
		RiskFreeRate:      0.025,
		MarketRiskPremium: 0.08,
		BaseShareCount:    1000000,
		BaseDailyVolume:   30000,
		HistoryDays:       30,
	}
}

// Clamp bounds enforced by the pricing and supply models.
const (
	BetaMin = 0.3
	BetaMax = 2.5

	SharesMin int64 = 500000
	SharesMax int64 = 5000000
)
