package reporting

import (
	"strings"
	"testing"
	"time"

	"heronomics/internal/domain"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func testToday() time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

// Name-sorted set with one zero-P/E entry and spread-out betas and moves.
func testInstruments() []*domain.Instrument {
	return []*domain.Instrument{
		{
			Name: "Barbarian", Symbol: "BAR", Beta: 1.9,
			MarketCap: 400_000_000, CurrentPrice: 80, Volume: 25000,
			DailyChange: -1.5, DailyChangePercent: -1.8,
			PERatio: 0, DividendYield: 0.5, EarningsPerShare: 0,
		},
		{
			Name: "Cleric", Symbol: "CLE", Beta: 0.7,
			MarketCap: 505_926_000, CurrentPrice: 190.11, Volume: 31000,
			DailyChange: 1.2, DailyChangePercent: 0.64,
			PERatio: 62.0, DividendYield: 0.56,
		},
		{
			Name: "Wizard", Symbol: "WIZ", Beta: 1.2,
			MarketCap: 600_000_000, CurrentPrice: 210.5, Volume: 42000,
			DailyChange: 4.1, DailyChangePercent: 1.99,
			PERatio: 15.5, DividendYield: 1.2,
		},
	}
}

func testIndices() map[string]domain.MarketIndex {
	return map[string]domain.MarketIndex{
		domain.IndexOverall: {Name: domain.IndexOverall, Value: 100.8, ChangePercent: 0.8},
		domain.IndexCaster:  {Name: domain.IndexCaster, Value: 101.25, ChangePercent: 1.25},
		domain.IndexMartial: {Name: domain.IndexMartial, Value: 98.2, ChangePercent: -1.8},
	}
}

func TestGenerate_Summary(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	r := g.Generate(testInstruments(), testIndices(), 1, testToday())

	s := r.Summary
	if s.TotalStocks != 3 || s.Gainers != 2 || s.Losers != 1 || s.Unchanged != 0 {
		t.Errorf("summary counts = %+v", s)
	}
	if s.TotalMarketCap != "$1,505,926,000" {
		t.Errorf("TotalMarketCap = %q", s.TotalMarketCap)
	}
	// Positive P/Es only: (62.0 + 15.5) / 2 = 38.75 -> 38.8
	if s.AvgPERatio != 38.8 {
		t.Errorf("AvgPERatio = %v, want 38.8", s.AvgPERatio)
	}
	if s.MedianPERatio != 38.8 {
		t.Errorf("MedianPERatio = %v, want 38.8", s.MedianPERatio)
	}
	// (0.5 + 0.56 + 1.2) / 3 = 0.7533...
	if s.AvgDividendYield != "0.75%" {
		t.Errorf("AvgDividendYield = %q", s.AvgDividendYield)
	}
	// (1.9 + 0.7 + 1.2) / 3 = 1.2666... -> 1.27
	if s.AvgBeta != 1.27 {
		t.Errorf("AvgBeta = %v, want 1.27", s.AvgBeta)
	}
	if r.SkippedClasses != 1 {
		t.Errorf("SkippedClasses = %d", r.SkippedClasses)
	}
	if r.GeneratedAt != "2026-03-15T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", r.GeneratedAt)
	}
}

func TestGenerate_Performers(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	r := g.Generate(testInstruments(), testIndices(), 0, testToday())

	if r.TopPerformer.Name != "Wizard" || r.TopPerformer.ChangePercent != 1.99 {
		t.Errorf("TopPerformer = %+v", r.TopPerformer)
	}
	if r.WorstPerformer.Name != "Barbarian" {
		t.Errorf("WorstPerformer = %+v", r.WorstPerformer)
	}
	if r.TopPerformer.MarketCap != "$600,000,000" {
		t.Errorf("TopPerformer.MarketCap = %q", r.TopPerformer.MarketCap)
	}
}

func TestGenerate_SectorsAndRisk(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	r := g.Generate(testInstruments(), testIndices(), 0, testToday())

	// Casters: Cleric, Wizard -> (0.64 + 1.99)/2 = 1.315 -> "1.3%"
	if r.SectorPerformance.CasterAvgReturn != "1.3%" || r.SectorPerformance.CasterCount != 2 {
		t.Errorf("SectorPerformance = %+v", r.SectorPerformance)
	}
	if r.SectorPerformance.MartialAvgReturn != "-1.8%" || r.SectorPerformance.MartialCount != 1 {
		t.Errorf("SectorPerformance = %+v", r.SectorPerformance)
	}

	if r.RiskAnalysis.HighBetaCount != 1 || r.RiskAnalysis.LowBetaCount != 1 {
		t.Errorf("RiskAnalysis = %+v", r.RiskAnalysis)
	}
	if len(r.RiskAnalysis.HighBetaStocks) != 1 || r.RiskAnalysis.HighBetaStocks[0].Name != "Barbarian" {
		t.Errorf("HighBetaStocks = %+v", r.RiskAnalysis.HighBetaStocks)
	}
	if len(r.RiskAnalysis.DefensiveStocks) != 1 || r.RiskAnalysis.DefensiveStocks[0].Name != "Cleric" {
		t.Errorf("DefensiveStocks = %+v", r.RiskAnalysis.DefensiveStocks)
	}
}

func TestGenerate_ValuationSlots(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	r := g.Generate(testInstruments(), testIndices(), 0, testToday())

	// The zero-P/E Barbarian sorts first and occupies a slot but is not
	// rendered, leaving the two positive P/Es.
	u := r.ValuationInsights.UndervaluedStocks
	if len(u) != 2 || u[0].Name != "Wizard" || u[1].Name != "Cleric" {
		t.Errorf("UndervaluedStocks = %+v", u)
	}

	h := r.ValuationInsights.HighDividendStocks
	if len(h) != 3 || h[0].Name != "Wizard" {
		t.Errorf("HighDividendStocks = %+v", h)
	}
}

func TestGenerate_RunIDStable(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	a := g.Generate(testInstruments(), testIndices(), 0, testToday())
	b := g.Generate(testInstruments(), testIndices(), 0, testToday())

	if a.Reproducibility.RunID == "" {
		t.Fatal("empty run ID")
	}
	if a.Reproducibility.RunID != b.Reproducibility.RunID {
		t.Errorf("run IDs differ: %s vs %s", a.Reproducibility.RunID, b.Reproducibility.RunID)
	}
	if a.Reproducibility.Today != "2026-03-15" {
		t.Errorf("Today = %q", a.Reproducibility.Today)
	}
}

func TestGenerate_Empty(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	r := g.Generate(nil, testIndices(), 0, testToday())
	if r.Summary.TotalStocks != 0 {
		t.Errorf("Summary = %+v", r.Summary)
	}
	if r.TopPerformer.Name != "" {
		t.Errorf("TopPerformer = %+v", r.TopPerformer)
	}
}

func TestSummarize(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())

	s := g.Summarize(testInstruments(), testIndices())

	if s.StockCount != 3 || s.LastUpdated != "2026-03-15T12:00:00Z" {
		t.Errorf("summary = %+v", s)
	}
	if len(s.TopStocks) != 3 {
		t.Fatalf("TopStocks = %+v", s.TopStocks)
	}
	// Ordered by daily change DESC.
	if s.TopStocks[0].Name != "Wizard" || s.TopStocks[2].Name != "Barbarian" {
		t.Errorf("TopStocks order = %v, %v, %v",
			s.TopStocks[0].Name, s.TopStocks[1].Name, s.TopStocks[2].Name)
	}
}

func TestRenderMarkdown(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())
	r := g.Generate(testInstruments(), testIndices(), 0, testToday())

	md := RenderMarkdown(r)

	for _, want := range []string{
		"# Market Overview",
		"| Total Stocks | 3 |",
		"| DND_500 | 100.80 | +0.80% |",
		"Top performer: **Wizard**",
		"| Caster | 1.3% | 2 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	csv := RenderCSV(testInstruments())

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header + 3 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "name,symbol,sector,beta") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Barbarian,BAR,martial,1.900") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestRenderJSON_Stable(t *testing.T) {
	g := NewGenerator().WithClock(fixedClock())
	instruments := testInstruments()

	r := g.Generate(instruments, testIndices(), 0, testToday())

	a, err := RenderReportJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderReportJSON(g.Generate(testInstruments(), testIndices(), 0, testToday()))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("report JSON not byte-identical across identical runs")
	}

	stocks, err := RenderStocksJSON(instruments)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(stocks), "\"WIZ\"") {
		t.Error("stocks JSON not keyed by symbol")
	}
}
