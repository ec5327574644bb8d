// Package market composes per-class scores into tradeable instruments and
// aggregates them into capitalization-weighted indices, narratives, and
// summary statistics.
package market

import (
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/idhash"
	"heronomics/internal/pricing"
	"heronomics/internal/rating"
	"heronomics/internal/series"
)

// Assembler builds one Instrument from a class's score and network profiles.
// All derivations are pure; the same profiles and today produce the same
// instrument field for field.
type Assembler struct {
	params    domain.MarketParams
	evaluator *rating.Evaluator
}

// NewAssembler creates an assembler with the given market parameters and
// rating thresholds.
func NewAssembler(params domain.MarketParams, thresholds rating.Thresholds) *Assembler {
	return &Assembler{
		params:    params,
		evaluator: rating.NewEvaluator(thresholds),
	}
}

// Assemble derives every financial field for one class. network may be nil;
// downstream computations treat a missing network profile as neutral.
func (a *Assembler) Assemble(score *domain.ClassScoreProfile, network *domain.NetworkProfile, today time.Time) (*domain.Instrument, error) {
	// 1. Pricing chain: beta -> CAPM base price -> supply -> earnings.
	beta := pricing.ComputeBeta(score, network)
	basePrice := pricing.ComputeBasePrice(beta, score.OverallPerformance, a.params)
	shares := pricing.ComputeOutstandingShares(score, network, a.params)

	eps, err := pricing.ComputeEarningsPerShare(score, network, shares)
	if err != nil {
		return nil, err
	}
	dividend := pricing.ComputeAnnualDividend(score)

	// 2. Derived valuation metrics.
	marketCap := basePrice * float64(shares)
	dividendYield := 0.0
	if basePrice > 0 {
		dividendYield = dividend / basePrice * 100
	}
	peRatio := 0.0
	if eps > 0 {
		peRatio = basePrice / eps
	}

	// 3. Deterministic price history and the market data read off its tail.
	var influence float64
	var bridges, partners int
	var centrality float64
	if network != nil {
		influence = network.NetworkInfluence
		bridges = network.BridgeConnections
		partners = network.SynergyPartners
		centrality = network.CentralityScore
	}

	history := series.Generate(series.Input{
		Name:                score.Name,
		BasePrice:           basePrice,
		Beta:                beta,
		OverallPerformance:  score.OverallPerformance,
		SpecializationRatio: score.SpecializationRatio,
		NetworkInfluence:    influence,
	}, a.params, today)

	currentPrice := history[len(history)-1].Price
	previousPrice := currentPrice
	if len(history) > 1 {
		previousPrice = history[len(history)-2].Price
	}
	dailyChange := currentPrice - previousPrice
	dailyChangePercent := 0.0
	if previousPrice > 0 {
		dailyChangePercent = dailyChange / previousPrice * 100
	}

	inst := &domain.Instrument{
		Name:   score.Name,
		Symbol: idhash.Symbol(score.Name),

		PowerScore:          score.PowerScore,
		SurvivabilityScore:  score.SurvivabilityScore,
		VersatilityScore:    score.VersatilityScore,
		SpecializationRatio: score.SpecializationRatio,
		OverallPerformance:  score.OverallPerformance,

		CentralityScore:   centrality,
		BridgeConnections: bridges,
		NetworkInfluence:  influence,
		SynergyPartners:   partners,

		Beta:              beta,
		RiskFreeRate:      a.params.RiskFreeRate,
		MarketRiskPremium: a.params.MarketRiskPremium,
		BasePrice:         basePrice,
		OutstandingShares: shares,
		MarketCap:         marketCap,
		AnnualDividend:    dividend,
		DividendYield:     dividendYield,
		EarningsPerShare:  eps,
		PERatio:           peRatio,

		CurrentPrice:       currentPrice,
		DailyChange:        dailyChange,
		DailyChangePercent: dailyChangePercent,
		Volume:             history[len(history)-1].Volume,
		PriceHistory:       history,

		Sentiment: a.evaluator.Sentiment(score),
		Rating:    a.evaluator.Rating(peRatio, dividendYield, score),
	}

	return inst, nil
}
