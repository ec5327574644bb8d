package pricing

import (
	"errors"
	"math"

	"heronomics/internal/domain"
)

// ErrZeroShares reports an impossible share count reaching the earnings
// model. The supply clamp makes this unreachable; if it happens anyway it is
// an invariant violation fatal to that class's assembly, not a fallback.
var ErrZeroShares = errors.New("pricing: zero outstanding shares")

// Earnings and dividend weights.
const (
	earningsPowerWeight         = 0.1
	earningsSurvivabilityWeight = 0.08
	earningsVersatilityWeight   = 0.06
	earningsInfluenceWeight     = 0.05

	dividendSurvivabilityWeight = 0.02
	dividendVersatilityWeight   = 0.015
)

// ComputeEarningsPerShare derives EPS from the composite scores, divided by
// the share float in millions. Rounded to 2 decimals.
func ComputeEarningsPerShare(score *domain.ClassScoreProfile, network *domain.NetworkProfile, outstandingShares int64) (float64, error) {
	if outstandingShares == 0 {
		return 0, ErrZeroShares
	}

	influence := 0.0
	if network != nil {
		influence = network.NetworkInfluence
	}

	totalEarnings := earningsPowerWeight*score.PowerScore +
		earningsSurvivabilityWeight*score.SurvivabilityScore +
		earningsVersatilityWeight*score.VersatilityScore +
		earningsInfluenceWeight*influence

	eps := totalEarnings / (float64(outstandingShares) / 1e6)
	return math.Round(eps*100) / 100, nil
}

// ComputeAnnualDividend derives the yearly payout from stability and
// utility, scaled by resource efficiency. Rounded to 2 decimals.
func ComputeAnnualDividend(score *domain.ClassScoreProfile) float64 {
	dividend := (dividendSurvivabilityWeight*score.SurvivabilityScore +
		dividendVersatilityWeight*score.VersatilityScore) * score.ResourceEfficiency

	return math.Round(dividend*100) / 100
}
