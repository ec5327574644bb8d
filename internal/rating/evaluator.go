package rating

import "heronomics/internal/domain"

// Evaluator classifies instruments against a fixed set of thresholds.
type Evaluator struct {
	t Thresholds
}

// NewEvaluator creates an evaluator with the given thresholds.
func NewEvaluator(t Thresholds) *Evaluator {
	return &Evaluator{t: t}
}

// Sentiment blends performance, versatility, and power into a single score
// and maps it to Bullish / Neutral / Bearish.
func (e *Evaluator) Sentiment(score *domain.ClassScoreProfile) string {
	s := e.t.SentimentOverallWeight*score.OverallPerformance +
		e.t.SentimentVersatilityWeight*score.VersatilityScore +
		e.t.SentimentPowerWeight*score.PowerScore

	switch {
	case s >= e.t.BullishScore:
		return domain.SentimentBullish
	case s >= e.t.NeutralScore:
		return domain.SentimentNeutral
	default:
		return domain.SentimentBearish
	}
}

// Rating builds an additive score from valuation, payout, performance, and
// efficiency bands, then maps it to the five ordered rating buckets.
// peRatio of 0 means earnings were non-positive and the valuation bands
// treat the instrument as cheap (0 < PECheap), matching the source model.
func (e *Evaluator) Rating(peRatio, dividendYield float64, score *domain.ClassScoreProfile) string {
	points := 0

	switch {
	case peRatio < e.t.PECheap:
		points += 2
	case peRatio < e.t.PEFair:
		points++
	case peRatio > e.t.PEExpensive:
		points--
	}

	switch {
	case dividendYield > e.t.YieldHigh:
		points += 2
	case dividendYield > e.t.YieldModerate:
		points++
	}

	switch {
	case score.OverallPerformance > e.t.PerformanceStrong:
		points += 2
	case score.OverallPerformance > e.t.PerformanceGood:
		points++
	case score.OverallPerformance < e.t.PerformanceWeak:
		points--
	}

	switch {
	case score.ResourceEfficiency > e.t.EfficiencyHigh:
		points++
	case score.ResourceEfficiency < e.t.EfficiencyLow:
		points--
	}

	switch {
	case points >= e.t.StrongBuyScore:
		return domain.RatingStrongBuy
	case points >= e.t.BuyScore:
		return domain.RatingBuy
	case points >= e.t.HoldScore:
		return domain.RatingHold
	case points >= e.t.WeakHoldScore:
		return domain.RatingWeakHold
	default:
		return domain.RatingSell
	}
}
