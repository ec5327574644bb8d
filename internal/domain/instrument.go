package domain

// Sentiment buckets for an instrument.
const (
	SentimentBullish = "Bullish"
	SentimentNeutral = "Neutral"
	SentimentBearish = "Bearish"
)

// Analyst rating buckets, ordered best to worst.
const (
	RatingStrongBuy = "Strong Buy"
	RatingBuy       = "Buy"
	RatingHold      = "Hold"
	RatingWeakHold  = "Weak Hold"
	RatingSell      = "Sell"
)

// PricePoint is one synthesized daily observation.
type PricePoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
}

// Instrument is the synthetic tradeable unit representing one class.
// Assembled once per simulation run and never mutated afterward; a re-run
// produces a fresh instrument set.
type Instrument struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	// Score inputs carried for reporting
	PowerScore          float64 `json:"power_score"`
	SurvivabilityScore  float64 `json:"survivability_score"`
	VersatilityScore    float64 `json:"versatility_score"`
	SpecializationRatio float64 `json:"specialization_ratio"`
	OverallPerformance  float64 `json:"overall_performance"`

	CentralityScore   float64 `json:"centrality_score"`
	BridgeConnections int     `json:"bridge_connections"`
	NetworkInfluence  float64 `json:"network_influence"`
	SynergyPartners   int     `json:"synergy_partnerships"`

	// Pricing
	Beta              float64 `json:"beta"` // clamped to [0.3, 2.5]
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
	BasePrice         float64 `json:"base_stock_price"`
	OutstandingShares int64   `json:"outstanding_shares"` // clamped to [500000, 5000000]
	MarketCap         float64 `json:"market_cap"`
	AnnualDividend    float64 `json:"annual_dividends"`
	DividendYield     float64 `json:"dividend_yield"`
	EarningsPerShare  float64 `json:"earnings_per_share"`
	PERatio           float64 `json:"pe_ratio"` // 0 when earnings <= 0

	// Market data derived from the price history
	CurrentPrice       float64      `json:"current_price"`
	DailyChange        float64      `json:"daily_change"`
	DailyChangePercent float64      `json:"daily_change_percent"`
	Volume             int64        `json:"volume"`
	PriceHistory       []PricePoint `json:"price_history"` // fixed length, date ascending

	Sentiment string   `json:"market_sentiment"`
	Rating    string   `json:"analyst_rating"`
	News      []string `json:"market_news,omitempty"` // at most 3 items
}
