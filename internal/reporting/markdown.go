package reporting

import (
	"fmt"
	"sort"
	"strings"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *MarketReport) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Market Overview\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s | Run: %s (v%s)\n\n",
		r.GeneratedAt, r.Reproducibility.RunID, r.Reproducibility.GeneratorVersion))

	// Market summary
	sb.WriteString("## Market Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Stocks | %d |\n", r.Summary.TotalStocks))
	sb.WriteString(fmt.Sprintf("| Gainers | %d |\n", r.Summary.Gainers))
	sb.WriteString(fmt.Sprintf("| Losers | %d |\n", r.Summary.Losers))
	sb.WriteString(fmt.Sprintf("| Unchanged | %d |\n", r.Summary.Unchanged))
	sb.WriteString(fmt.Sprintf("| Total Market Cap | %s |\n", r.Summary.TotalMarketCap))
	sb.WriteString(fmt.Sprintf("| Avg P/E Ratio | %.1f |\n", r.Summary.AvgPERatio))
	sb.WriteString(fmt.Sprintf("| Median P/E Ratio | %.1f |\n", r.Summary.MedianPERatio))
	sb.WriteString(fmt.Sprintf("| Avg Dividend Yield | %s |\n", r.Summary.AvgDividendYield))
	sb.WriteString(fmt.Sprintf("| Avg Beta | %.2f |\n", r.Summary.AvgBeta))
	if r.SkippedClasses > 0 {
		sb.WriteString(fmt.Sprintf("| Skipped Classes | %d |\n", r.SkippedClasses))
	}
	sb.WriteString("\n")

	// Indices, sorted by name for stable output
	sb.WriteString("## Indices\n\n")
	sb.WriteString("| Index | Value | Change |\n")
	sb.WriteString("|-------|-------|--------|\n")
	names := make([]string, 0, len(r.Indices))
	for name := range r.Indices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		idx := r.Indices[name]
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %+.2f%% |\n", name, idx.Value, idx.ChangePercent))
	}
	sb.WriteString("\n")

	// Movers
	sb.WriteString("## Movers\n\n")
	sb.WriteString(fmt.Sprintf("- Top performer: **%s** (%s) %+.2f%% at %.2f, volume %d, cap %s\n",
		r.TopPerformer.Name, r.TopPerformer.Symbol, r.TopPerformer.ChangePercent,
		r.TopPerformer.Price, r.TopPerformer.Volume, r.TopPerformer.MarketCap))
	sb.WriteString(fmt.Sprintf("- Worst performer: **%s** (%s) %+.2f%% at %.2f, volume %d, cap %s\n\n",
		r.WorstPerformer.Name, r.WorstPerformer.Symbol, r.WorstPerformer.ChangePercent,
		r.WorstPerformer.Price, r.WorstPerformer.Volume, r.WorstPerformer.MarketCap))

	// Sectors
	sb.WriteString("## Sector Performance\n\n")
	sb.WriteString("| Sector | Avg Return | Stocks |\n")
	sb.WriteString("|--------|------------|--------|\n")
	sb.WriteString(fmt.Sprintf("| Caster | %s | %d |\n",
		r.SectorPerformance.CasterAvgReturn, r.SectorPerformance.CasterCount))
	sb.WriteString(fmt.Sprintf("| Martial | %s | %d |\n\n",
		r.SectorPerformance.MartialAvgReturn, r.SectorPerformance.MartialCount))

	// Risk
	sb.WriteString("## Risk Analysis\n\n")
	sb.WriteString(fmt.Sprintf("High beta (>1.5): %d | Defensive (<0.8): %d\n\n",
		r.RiskAnalysis.HighBetaCount, r.RiskAnalysis.LowBetaCount))
	for _, e := range r.RiskAnalysis.HighBetaStocks {
		sb.WriteString(fmt.Sprintf("- %s: beta %.3f (high)\n", e.Name, e.Beta))
	}
	for _, e := range r.RiskAnalysis.DefensiveStocks {
		sb.WriteString(fmt.Sprintf("- %s: beta %.3f (defensive)\n", e.Name, e.Beta))
	}
	sb.WriteString("\n")

	// Valuation
	sb.WriteString("## Valuation Insights\n\n")
	if len(r.ValuationInsights.UndervaluedStocks) > 0 {
		sb.WriteString("Undervalued:\n\n")
		for _, e := range r.ValuationInsights.UndervaluedStocks {
			sb.WriteString(fmt.Sprintf("- %s: P/E %.1f, yield %s\n", e.Name, e.PERatio, e.DividendYield))
		}
		sb.WriteString("\n")
	}
	if len(r.ValuationInsights.HighDividendStocks) > 0 {
		sb.WriteString("High dividend:\n\n")
		for _, e := range r.ValuationInsights.HighDividendStocks {
			sb.WriteString(fmt.Sprintf("- %s: yield %s at %.2f\n", e.Name, e.DividendYield, e.Price))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
