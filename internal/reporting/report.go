// Package reporting turns an assembled market into the report, summary,
// and rendered output documents.
package reporting

import "heronomics/internal/domain"

// GeneratorVersion is stamped into every report's reproducibility block.
// Bump on any change that alters report output for identical inputs.
const GeneratorVersion = "1.0.0"

// MarketReport is the full analytical report for one run.
type MarketReport struct {
	Summary           SummaryStats                  `json:"market_summary"`
	Indices           map[string]domain.MarketIndex `json:"market_indices"`
	TopPerformer      Performer                     `json:"top_performer"`
	WorstPerformer    Performer                     `json:"worst_performer"`
	SectorPerformance SectorPerformance             `json:"sector_performance"`
	RiskAnalysis      RiskAnalysis                  `json:"risk_analysis"`
	ValuationInsights ValuationInsights             `json:"valuation_insights"`
	SkippedClasses    int                           `json:"skipped_classes"`
	Reproducibility   Reproducibility               `json:"reproducibility"`
	GeneratedAt       string                        `json:"generated_at"` // RFC 3339
}

// SummaryStats aggregates the whole instrument set. Formatted fields keep
// the display shapes the report consumers expect.
type SummaryStats struct {
	TotalStocks      int     `json:"total_stocks"`
	Gainers          int     `json:"gainers"`
	Losers           int     `json:"losers"`
	Unchanged        int     `json:"unchanged"`
	TotalMarketCap   string  `json:"total_market_cap"`  // "$1,234,567"
	AvgPERatio       float64 `json:"avg_pe_ratio"`      // over positive P/Es, 1 decimal
	MedianPERatio    float64 `json:"median_pe_ratio"`   // over positive P/Es, 1 decimal
	AvgDividendYield string  `json:"avg_dividend_yield"` // "1.23%"
	AvgBeta          float64 `json:"avg_beta"`          // 2 decimals
}

// Performer highlights the best or worst daily mover.
type Performer struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	ChangePercent float64 `json:"change_percent"`
	Price         float64 `json:"price"`
	Volume        int64   `json:"volume"`
	MarketCap     string  `json:"market_cap"`
}

// SectorPerformance is the per-sector average daily return.
type SectorPerformance struct {
	CasterAvgReturn  string `json:"caster_avg_return"` // "1.2%"
	MartialAvgReturn string `json:"martial_avg_return"`
	CasterCount      int    `json:"caster_count"`
	MartialCount     int    `json:"martial_count"`
}

// BetaEntry names one instrument with its beta.
type BetaEntry struct {
	Name string  `json:"name"`
	Beta float64 `json:"beta"`
}

// RiskAnalysis splits the set into high-beta and defensive groups.
type RiskAnalysis struct {
	HighBetaCount   int         `json:"high_beta_count"` // beta > 1.5
	LowBetaCount    int         `json:"low_beta_count"`  // beta < 0.8
	HighBetaStocks  []BetaEntry `json:"high_beta_stocks"` // top 3
	DefensiveStocks []BetaEntry `json:"defensive_stocks"` // top 3
}

// ValuationEntry names one instrument with its valuation figures.
type ValuationEntry struct {
	Name          string  `json:"name"`
	PERatio       float64 `json:"pe,omitempty"`
	DividendYield string  `json:"dividend_yield"`
	Price         float64 `json:"price,omitempty"`
}

// ValuationInsights lists cheap and income picks.
type ValuationInsights struct {
	UndervaluedStocks  []ValuationEntry `json:"undervalued_stocks"`   // 3 lowest positive P/Es
	HighDividendStocks []ValuationEntry `json:"high_dividend_stocks"` // 3 highest yields
}

// Reproducibility identifies the exact run that produced this report.
type Reproducibility struct {
	RunID            string `json:"run_id"` // base58 over the set fingerprint
	GeneratorVersion string `json:"generator_version"`
	Today            string `json:"today"` // YYYY-MM-DD
}

// MarketSummary is the compact dashboard document.
type MarketSummary struct {
	LastUpdated string                        `json:"last_updated"` // RFC 3339
	Indices     map[string]domain.MarketIndex `json:"market_indices"`
	StockCount  int                           `json:"stock_count"`
	TopStocks   []SummaryStock                `json:"top_stocks"` // top 5 by daily change DESC
}

// SummaryStock is one dashboard row.
type SummaryStock struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	MarketCap     float64 `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	DividendYield float64 `json:"dividend_yield"`
}
