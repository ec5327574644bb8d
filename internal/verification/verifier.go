// Package verification checks that synthesis runs reproduce exactly: the
// same documents and the same date must yield identical instruments.
package verification

import (
	"context"
	"fmt"
	"math"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/market"
	"heronomics/internal/pipeline"
	"heronomics/internal/storage"
)

// FloatTolerance is the tolerance for float64 comparisons. Synthesis is
// deterministic, so divergence beyond rounding noise means a real mismatch.
const FloatTolerance = 1e-9

// FieldDivergence represents a mismatch between two values of one field.
type FieldDivergence struct {
	Field    string
	Expected interface{}
	Actual   interface{}
}

// InstrumentResult is the comparison outcome for a single instrument.
type InstrumentResult struct {
	Symbol      string
	Match       bool
	Divergences []FieldDivergence
}

// Report is the outcome of comparing two full runs.
type Report struct {
	TotalInstruments     int
	MatchedInstruments   int
	DivergentInstruments int
	FingerprintExpected  string
	FingerprintActual    string
	Match                bool
	Results              []InstrumentResult
}

// Verifier re-executes the synthesis pipeline and compares the result
// against a second execution or a stored run.
type Verifier struct {
	opts  pipeline.Options
	clock func() time.Time
}

// New creates a verifier. Stores and output configured on opts are ignored;
// verification runs are side-effect free.
func New(opts pipeline.Options) *Verifier {
	opts.Instruments = nil
	opts.Indices = nil
	opts.Histories = nil
	opts.OutputDir = ""
	return &Verifier{
		opts:  opts,
		clock: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function, shared by both executions.
func (v *Verifier) WithClock(clock func() time.Time) *Verifier {
	v.clock = clock
	return v
}

// Verify runs the pipeline twice against the same sources and clock and
// compares the two instrument sets.
func (v *Verifier) Verify(ctx context.Context) (*Report, error) {
	first, err := v.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("first run: %w", err)
	}
	second, err := v.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("second run: %w", err)
	}
	return Compare(first.Instruments, second.Instruments), nil
}

// VerifyStored replays the synthesis and compares it against the instruments
// stored under runID. The caller's clock must reproduce the stored run's
// date for the comparison to be meaningful.
func (v *Verifier) VerifyStored(ctx context.Context, store storage.InstrumentStore, runID string) (*Report, error) {
	stored, err := store.ListByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("load stored run %s: %w", runID, err)
	}

	replayed, err := v.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return Compare(stored, replayed.Instruments), nil
}

func (v *Verifier) run(ctx context.Context) (*pipeline.Result, error) {
	return pipeline.New(v.opts).WithClock(v.clock).Run(ctx)
}

// Compare pairs two name-ordered instrument sets and reports every
// divergence. Sets of different lengths diverge wholesale.
func Compare(expected, actual []*domain.Instrument) *Report {
	report := &Report{
		TotalInstruments:    len(expected),
		FingerprintExpected: market.Fingerprint(expected),
		FingerprintActual:   market.Fingerprint(actual),
	}
	report.Match = report.FingerprintExpected == report.FingerprintActual

	if len(expected) != len(actual) {
		report.DivergentInstruments = report.TotalInstruments
		report.Results = append(report.Results, InstrumentResult{
			Symbol: "",
			Match:  false,
			Divergences: []FieldDivergence{{
				Field:    "InstrumentCount",
				Expected: len(expected),
				Actual:   len(actual),
			}},
		})
		return report
	}

	for i, exp := range expected {
		divergences := CompareInstruments(exp, actual[i])
		result := InstrumentResult{
			Symbol:      exp.Symbol,
			Match:       len(divergences) == 0,
			Divergences: divergences,
		}
		if result.Match {
			report.MatchedInstruments++
		} else {
			report.DivergentInstruments++
		}
		report.Results = append(report.Results, result)
	}
	return report
}

// CompareInstruments compares two instruments field by field and returns
// the divergences. Uses FloatTolerance for float64 comparisons.
func CompareInstruments(expected, actual *domain.Instrument) []FieldDivergence {
	var divergences []FieldDivergence

	diverge := func(field string, exp, act interface{}) {
		divergences = append(divergences, FieldDivergence{Field: field, Expected: exp, Actual: act})
	}

	if expected.Name != actual.Name {
		diverge("Name", expected.Name, actual.Name)
	}
	if expected.Symbol != actual.Symbol {
		diverge("Symbol", expected.Symbol, actual.Symbol)
	}
	if !floatEquals(expected.Beta, actual.Beta) {
		diverge("Beta", expected.Beta, actual.Beta)
	}
	if !floatEquals(expected.BasePrice, actual.BasePrice) {
		diverge("BasePrice", expected.BasePrice, actual.BasePrice)
	}
	if !floatEquals(expected.CurrentPrice, actual.CurrentPrice) {
		diverge("CurrentPrice", expected.CurrentPrice, actual.CurrentPrice)
	}
	if !floatEquals(expected.DailyChange, actual.DailyChange) {
		diverge("DailyChange", expected.DailyChange, actual.DailyChange)
	}
	if !floatEquals(expected.DailyChangePercent, actual.DailyChangePercent) {
		diverge("DailyChangePercent", expected.DailyChangePercent, actual.DailyChangePercent)
	}
	if expected.OutstandingShares != actual.OutstandingShares {
		diverge("OutstandingShares", expected.OutstandingShares, actual.OutstandingShares)
	}
	if !floatEquals(expected.MarketCap, actual.MarketCap) {
		diverge("MarketCap", expected.MarketCap, actual.MarketCap)
	}
	if !floatEquals(expected.EarningsPerShare, actual.EarningsPerShare) {
		diverge("EarningsPerShare", expected.EarningsPerShare, actual.EarningsPerShare)
	}
	if !floatEquals(expected.PERatio, actual.PERatio) {
		diverge("PERatio", expected.PERatio, actual.PERatio)
	}
	if !floatEquals(expected.AnnualDividend, actual.AnnualDividend) {
		diverge("AnnualDividend", expected.AnnualDividend, actual.AnnualDividend)
	}
	if !floatEquals(expected.DividendYield, actual.DividendYield) {
		diverge("DividendYield", expected.DividendYield, actual.DividendYield)
	}
	if expected.Volume != actual.Volume {
		diverge("Volume", expected.Volume, actual.Volume)
	}
	if expected.Sentiment != actual.Sentiment {
		diverge("Sentiment", expected.Sentiment, actual.Sentiment)
	}
	if expected.Rating != actual.Rating {
		diverge("Rating", expected.Rating, actual.Rating)
	}

	if len(expected.PriceHistory) != len(actual.PriceHistory) {
		diverge("PriceHistoryLength", len(expected.PriceHistory), len(actual.PriceHistory))
	} else {
		for i := range expected.PriceHistory {
			exp, act := expected.PriceHistory[i], actual.PriceHistory[i]
			if exp.Date != act.Date {
				diverge(fmt.Sprintf("PriceHistory[%d].Date", i), exp.Date, act.Date)
			}
			if !floatEquals(exp.Price, act.Price) {
				diverge(fmt.Sprintf("PriceHistory[%d].Price", i), exp.Price, act.Price)
			}
			if exp.Volume != act.Volume {
				diverge(fmt.Sprintf("PriceHistory[%d].Volume", i), exp.Volume, act.Volume)
			}
		}
	}

	return divergences
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= FloatTolerance
}
