package verification

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/pipeline"
	"heronomics/internal/rating"
	"heronomics/internal/source/fixtures"
	"heronomics/internal/storage/memory"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func testOptions() pipeline.Options {
	src := fixtures.New()
	return pipeline.Options{
		Attributes: src,
		Network:    src,
		Params:     domain.DefaultMarketParams(),
		Thresholds: rating.DefaultThresholds(),
		Logger:     log.New(io.Discard, "", 0),
	}
}

func TestVerify_IdenticalRuns(t *testing.T) {
	v := New(testOptions()).WithClock(fixedClock())

	report, err := v.Verify(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !report.Match {
		t.Errorf("fingerprints differ: %s vs %s",
			report.FingerprintExpected, report.FingerprintActual)
	}
	if report.DivergentInstruments != 0 {
		for _, r := range report.Results {
			if !r.Match {
				t.Errorf("%s diverged: %+v", r.Symbol, r.Divergences)
			}
		}
	}
	if report.TotalInstruments != 12 || report.MatchedInstruments != 12 {
		t.Errorf("report = %+v", report)
	}
}

func TestVerifyStored(t *testing.T) {
	ctx := context.Background()
	store := memory.NewInstrumentStore()

	opts := testOptions()
	opts.Instruments = store
	result, err := pipeline.New(opts).WithClock(fixedClock()).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}

	v := New(testOptions()).WithClock(fixedClock())
	report, err := v.VerifyStored(ctx, store, result.RunID)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Match {
		t.Errorf("stored run does not reproduce: %+v", report)
	}
}

func TestVerifyStored_UnknownRun(t *testing.T) {
	v := New(testOptions()).WithClock(fixedClock())

	report, err := v.VerifyStored(context.Background(), memory.NewInstrumentStore(), "missing")
	if err != nil {
		t.Fatal(err)
	}
	// An unknown run loads as an empty set and diverges on count.
	if report.Match {
		t.Error("expected divergence for unknown run")
	}
}

func TestCompareInstruments_Divergence(t *testing.T) {
	a := &domain.Instrument{Name: "Cleric", Symbol: "CLE", Beta: 0.831, CurrentPrice: 190.11}
	b := &domain.Instrument{Name: "Cleric", Symbol: "CLE", Beta: 0.832, CurrentPrice: 190.11}

	divergences := CompareInstruments(a, b)
	if len(divergences) != 1 {
		t.Fatalf("divergences = %+v", divergences)
	}
	if divergences[0].Field != "Beta" {
		t.Errorf("field = %s", divergences[0].Field)
	}
}

func TestCompareInstruments_HistoryDivergence(t *testing.T) {
	a := &domain.Instrument{
		Symbol:       "CLE",
		PriceHistory: []domain.PricePoint{{Date: "2026-03-14", Price: 100, Volume: 1000}},
	}
	b := &domain.Instrument{
		Symbol:       "CLE",
		PriceHistory: []domain.PricePoint{{Date: "2026-03-14", Price: 100.5, Volume: 1000}},
	}

	divergences := CompareInstruments(a, b)
	if len(divergences) != 1 || divergences[0].Field != "PriceHistory[0].Price" {
		t.Errorf("divergences = %+v", divergences)
	}
}

func TestCompare_CountMismatch(t *testing.T) {
	a := []*domain.Instrument{{Symbol: "CLE"}}
	report := Compare(a, nil)
	if report.Match {
		t.Error("expected mismatch")
	}
	if report.DivergentInstruments != 1 {
		t.Errorf("report = %+v", report)
	}
}
