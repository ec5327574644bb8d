package reporting

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/idhash"
	"heronomics/internal/market"
)

// Beta band boundaries for the risk breakdown.
const (
	highBetaThreshold = 1.5
	lowBetaThreshold  = 0.8
	highlightCount    = 3
	topStockCount     = 5
)

// Generator produces reports from an assembled instrument set.
type Generator struct {
	now func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate builds the full report. instruments must be sorted by name; tie
// breaks on the performer highlights then fall to the first by name. today
// is the synthesis date the histories end on.
func (g *Generator) Generate(instruments []*domain.Instrument, indices map[string]domain.MarketIndex, skipped int, today time.Time) *MarketReport {
	report := &MarketReport{
		Summary:        g.summaryStats(instruments),
		Indices:        indices,
		SkippedClasses: skipped,
		Reproducibility: Reproducibility{
			RunID:            idhash.ComputeRunID(market.Fingerprint(instruments)),
			GeneratorVersion: GeneratorVersion,
			Today:            today.Format("2006-01-02"),
		},
		GeneratedAt: g.now().Format(time.RFC3339),
	}

	if len(instruments) == 0 {
		return report
	}

	top, worst := instruments[0], instruments[0]
	for _, inst := range instruments[1:] {
		if inst.DailyChangePercent > top.DailyChangePercent {
			top = inst
		}
		if inst.DailyChangePercent < worst.DailyChangePercent {
			worst = inst
		}
	}
	report.TopPerformer = performer(top)
	report.WorstPerformer = performer(worst)

	report.SectorPerformance = sectorPerformance(instruments)
	report.RiskAnalysis = riskAnalysis(instruments)
	report.ValuationInsights = valuationInsights(instruments)

	return report
}

// Summarize builds the compact dashboard summary.
func (g *Generator) Summarize(instruments []*domain.Instrument, indices map[string]domain.MarketIndex) *MarketSummary {
	byChange := make([]*domain.Instrument, len(instruments))
	copy(byChange, instruments)
	sort.SliceStable(byChange, func(i, j int) bool {
		return byChange[i].DailyChangePercent > byChange[j].DailyChangePercent
	})
	if len(byChange) > topStockCount {
		byChange = byChange[:topStockCount]
	}

	topStocks := make([]SummaryStock, 0, len(byChange))
	for _, inst := range byChange {
		topStocks = append(topStocks, SummaryStock{
			Name:          inst.Name,
			Symbol:        inst.Symbol,
			Price:         inst.CurrentPrice,
			Change:        inst.DailyChangePercent,
			MarketCap:     inst.MarketCap,
			PERatio:       inst.PERatio,
			DividendYield: inst.DividendYield,
		})
	}

	return &MarketSummary{
		LastUpdated: g.now().Format(time.RFC3339),
		Indices:     indices,
		StockCount:  len(instruments),
		TopStocks:   topStocks,
	}
}

func (g *Generator) summaryStats(instruments []*domain.Instrument) SummaryStats {
	gainers, losers := 0, 0
	var peRatios, yields, betas []float64
	for _, inst := range instruments {
		switch {
		case inst.DailyChange > 0:
			gainers++
		case inst.DailyChange < 0:
			losers++
		}
		peRatios = append(peRatios, inst.PERatio)
		yields = append(yields, inst.DividendYield)
		betas = append(betas, inst.Beta)
	}

	positive := make([]float64, 0, len(peRatios))
	for _, pe := range peRatios {
		if pe > 0 {
			positive = append(positive, pe)
		}
	}

	return SummaryStats{
		TotalStocks:      len(instruments),
		Gainers:          gainers,
		Losers:           losers,
		Unchanged:        len(instruments) - gainers - losers,
		TotalMarketCap:   formatDollars(market.TotalMarketCap(instruments)),
		AvgPERatio:       round1(market.Mean(positive)),
		MedianPERatio:    round1(market.Median(positive)),
		AvgDividendYield: fmt.Sprintf("%.2f%%", market.Mean(yields)),
		AvgBeta:          round2(market.Mean(betas)),
	}
}

func performer(inst *domain.Instrument) Performer {
	return Performer{
		Name:          inst.Name,
		Symbol:        inst.Symbol,
		ChangePercent: inst.DailyChangePercent,
		Price:         inst.CurrentPrice,
		Volume:        inst.Volume,
		MarketCap:     formatDollars(inst.MarketCap),
	}
}

func sectorPerformance(instruments []*domain.Instrument) SectorPerformance {
	var casterReturns, martialReturns []float64
	for _, inst := range instruments {
		switch domain.SectorOf(inst.Name) {
		case domain.SectorCaster:
			casterReturns = append(casterReturns, inst.DailyChangePercent)
		case domain.SectorMartial:
			martialReturns = append(martialReturns, inst.DailyChangePercent)
		}
	}

	return SectorPerformance{
		CasterAvgReturn:  fmt.Sprintf("%.1f%%", market.Mean(casterReturns)),
		MartialAvgReturn: fmt.Sprintf("%.1f%%", market.Mean(martialReturns)),
		CasterCount:      len(casterReturns),
		MartialCount:     len(martialReturns),
	}
}

func riskAnalysis(instruments []*domain.Instrument) RiskAnalysis {
	var high, low []BetaEntry
	for _, inst := range instruments {
		switch {
		case inst.Beta > highBetaThreshold:
			high = append(high, BetaEntry{Name: inst.Name, Beta: inst.Beta})
		case inst.Beta < lowBetaThreshold:
			low = append(low, BetaEntry{Name: inst.Name, Beta: inst.Beta})
		}
	}

	r := RiskAnalysis{
		HighBetaCount:   len(high),
		LowBetaCount:    len(low),
		HighBetaStocks:  high,
		DefensiveStocks: low,
	}
	if len(r.HighBetaStocks) > highlightCount {
		r.HighBetaStocks = r.HighBetaStocks[:highlightCount]
	}
	if len(r.DefensiveStocks) > highlightCount {
		r.DefensiveStocks = r.DefensiveStocks[:highlightCount]
	}
	return r
}

func valuationInsights(instruments []*domain.Instrument) ValuationInsights {
	byPE := make([]*domain.Instrument, len(instruments))
	copy(byPE, instruments)
	sort.SliceStable(byPE, func(i, j int) bool {
		return byPE[i].PERatio < byPE[j].PERatio
	})

	// Zero P/Es (non-positive earnings) sort first and occupy slots but are
	// filtered out of the rendered list.
	if len(byPE) > highlightCount {
		byPE = byPE[:highlightCount]
	}
	var undervalued []ValuationEntry
	for _, inst := range byPE {
		if inst.PERatio > 0 {
			undervalued = append(undervalued, ValuationEntry{
				Name:          inst.Name,
				PERatio:       inst.PERatio,
				DividendYield: fmt.Sprintf("%.1f%%", inst.DividendYield),
			})
		}
	}

	byYield := make([]*domain.Instrument, len(instruments))
	copy(byYield, instruments)
	sort.SliceStable(byYield, func(i, j int) bool {
		return byYield[i].DividendYield > byYield[j].DividendYield
	})
	if len(byYield) > highlightCount {
		byYield = byYield[:highlightCount]
	}
	var highDividend []ValuationEntry
	for _, inst := range byYield {
		highDividend = append(highDividend, ValuationEntry{
			Name:          inst.Name,
			DividendYield: fmt.Sprintf("%.1f%%", inst.DividendYield),
			Price:         inst.CurrentPrice,
		})
	}

	return ValuationInsights{
		UndervaluedStocks:  undervalued,
		HighDividendStocks: highDividend,
	}
}

// formatDollars renders a cap as "$1,234,567" with thousands separators.
func formatDollars(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}

	if neg {
		return "$-" + string(out)
	}
	return "$" + string(out)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
