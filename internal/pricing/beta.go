// Package pricing derives the financial figures of one instrument from its
// score and network profiles: risk coefficient, CAPM base price, share
// float, earnings, and dividends. All formulas are deterministic and every
// bounded value is clamped, never silently coerced elsewhere.
package pricing

import (
	"math"

	"heronomics/internal/domain"
)

// Beta formula constants. Specialization raises volatility; versatility,
// survivability, and network influence dampen it.
const (
	specializationEffectScale = 1.5

	versatilityNormalizer   = 50.0
	survivabilityNormalizer = 40.0
	influenceNormalizer     = 25.0
	stabilityEffectScale    = 0.8
)

// ComputeBeta derives the bounded risk coefficient for one class.
// beta = 1.0 + specializationEffect - stabilityEffect, clamped to
// [BetaMin, BetaMax] and rounded to 3 decimals.
// A missing score profile yields the market-neutral 1.0.
func ComputeBeta(score *domain.ClassScoreProfile, network *domain.NetworkProfile) float64 {
	if score == nil {
		return 1.0
	}

	influence := 0.0
	if network != nil {
		influence = network.NetworkInfluence
	}

	specializationEffect := score.SpecializationRatio * specializationEffectScale
	stabilityEffect := (score.VersatilityScore/versatilityNormalizer +
		score.SurvivabilityScore/survivabilityNormalizer +
		influence/influenceNormalizer) / 3 * stabilityEffectScale

	beta := 1.0 + specializationEffect - stabilityEffect
	beta = math.Max(domain.BetaMin, math.Min(domain.BetaMax, beta))

	return math.Round(beta*1000) / 1000
}
