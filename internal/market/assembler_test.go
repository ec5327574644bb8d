package market

import (
	"testing"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/rating"
)

func testScore() *domain.ClassScoreProfile {
	return &domain.ClassScoreProfile{
		Name:                "Cleric",
		PowerScore:          34.6,
		SurvivabilityScore:  23.5,
		VersatilityScore:    38.5,
		SpecializationRatio: 0.2,
		OverallPerformance:  32.44,
		ResourceEfficiency:  1.0,
		TotalSpells:         40,
		HitDie:              6,
		ProficiencyCount:    3,
		SavingThrowCount:    2,
	}
}

func testNetwork() *domain.NetworkProfile {
	return &domain.NetworkProfile{
		Name:             "Cleric",
		CentralityScore:  1.5,
		NetworkInfluence: 10,
		SynergyPartners:  4,
	}
}

func testToday() time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestAssemble(t *testing.T) {
	a := NewAssembler(domain.DefaultMarketParams(), rating.DefaultThresholds())

	inst, err := a.Assemble(testScore(), testNetwork(), testToday())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if inst.Symbol != "CLE" {
		t.Errorf("Symbol = %q, want CLE", inst.Symbol)
	}
	if inst.Beta != 0.831 {
		t.Errorf("Beta = %v, want 0.831", inst.Beta)
	}
	if inst.BasePrice != 187.38 {
		t.Errorf("BasePrice = %v, want 187.38", inst.BasePrice)
	}
	if inst.OutstandingShares != 2700000 {
		t.Errorf("OutstandingShares = %d, want 2700000", inst.OutstandingShares)
	}
	if inst.EarningsPerShare != 3.02 {
		t.Errorf("EarningsPerShare = %v, want 3.02", inst.EarningsPerShare)
	}
	if inst.AnnualDividend != 1.05 {
		t.Errorf("AnnualDividend = %v, want 1.05", inst.AnnualDividend)
	}

	wantCap := 187.38 * 2700000
	if inst.MarketCap != wantCap {
		t.Errorf("MarketCap = %v, want %v", inst.MarketCap, wantCap)
	}
	wantYield := 1.05 / 187.38 * 100
	if inst.DividendYield != wantYield {
		t.Errorf("DividendYield = %v, want %v", inst.DividendYield, wantYield)
	}
	wantPE := 187.38 / 3.02
	if inst.PERatio != wantPE {
		t.Errorf("PERatio = %v, want %v", inst.PERatio, wantPE)
	}

	if len(inst.PriceHistory) != domain.DefaultMarketParams().HistoryDays {
		t.Fatalf("history length = %d", len(inst.PriceHistory))
	}
	last := inst.PriceHistory[len(inst.PriceHistory)-1]
	if inst.CurrentPrice != last.Price {
		t.Errorf("CurrentPrice = %v, want last history price %v", inst.CurrentPrice, last.Price)
	}
	if inst.Volume != last.Volume {
		t.Errorf("Volume = %d, want last history volume %d", inst.Volume, last.Volume)
	}
	prev := inst.PriceHistory[len(inst.PriceHistory)-2]
	if got := inst.CurrentPrice - prev.Price; inst.DailyChange != got {
		t.Errorf("DailyChange = %v, want %v", inst.DailyChange, got)
	}

	if inst.Sentiment == "" || inst.Rating == "" {
		t.Error("sentiment and rating must always be populated")
	}
}

func TestAssemble_MissingNetwork(t *testing.T) {
	a := NewAssembler(domain.DefaultMarketParams(), rating.DefaultThresholds())

	inst, err := a.Assemble(testScore(), nil, testToday())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if inst.NetworkInfluence != 0 || inst.SynergyPartners != 0 || inst.BridgeConnections != 0 {
		t.Errorf("missing network must zero the network fields, got %+v", inst)
	}
	if inst.Beta <= 0 {
		t.Errorf("Beta = %v, want positive", inst.Beta)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	a := NewAssembler(domain.DefaultMarketParams(), rating.DefaultThresholds())

	first, err := a.Assemble(testScore(), testNetwork(), testToday())
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(testScore(), testNetwork(), testToday())
	if err != nil {
		t.Fatal(err)
	}

	if first.CurrentPrice != second.CurrentPrice || first.DailyChangePercent != second.DailyChangePercent {
		t.Errorf("repeated assembly diverged: %v vs %v", first.CurrentPrice, second.CurrentPrice)
	}
	for i := range first.PriceHistory {
		if first.PriceHistory[i] != second.PriceHistory[i] {
			t.Fatalf("history diverges at %d", i)
		}
	}
}
