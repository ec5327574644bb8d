package reporting

import (
	"encoding/json"
	"fmt"

	"heronomics/internal/domain"
)

// Output document filenames.
const (
	StocksFile   = "financial_stocks.json"
	ReportFile   = "market_report.json"
	SummaryFile  = "market_summary.json"
	OverviewFile = "MARKET_OVERVIEW.md"
	CSVFile      = "instruments.csv"
)

// RenderStocksJSON renders the full instrument set keyed by symbol.
// encoding/json sorts map keys, so the output is stable.
func RenderStocksJSON(instruments []*domain.Instrument) ([]byte, error) {
	stocks := make(map[string]*domain.Instrument, len(instruments))
	for _, inst := range instruments {
		stocks[inst.Symbol] = inst
	}

	data, err := json.MarshalIndent(stocks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal stocks: %w", err)
	}
	return data, nil
}

// RenderReportJSON renders the market report document.
func RenderReportJSON(r *MarketReport) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// RenderSummaryJSON renders the dashboard summary document.
func RenderSummaryJSON(s *MarketSummary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return data, nil
}
