// Package rating classifies instruments into sentiment and analyst-rating
// buckets from fixed threshold bands. The band constants are empirically
// chosen and carried as configuration rather than re-derived.
package rating

// Thresholds holds every band constant used by the classifier.
type Thresholds struct {
	// Sentiment blend weights and cutoffs
	SentimentOverallWeight     float64
	SentimentVersatilityWeight float64
	SentimentPowerWeight       float64
	BullishScore               float64
	NeutralScore               float64

	// P/E valuation bands
	PECheap     float64 // below: +2
	PEFair      float64 // below: +1
	PEExpensive float64 // above: -1

	// Dividend yield bands
	YieldHigh     float64 // above: +2
	YieldModerate float64 // above: +1

	// Performance bands
	PerformanceStrong float64 // above: +2
	PerformanceGood   float64 // above: +1
	PerformanceWeak   float64 // below: -1

	// Resource efficiency bands
	EfficiencyHigh float64 // above: +1
	EfficiencyLow  float64 // below: -1

	// Rating score cutoffs, best to worst
	StrongBuyScore int
	BuyScore       int
	HoldScore      int
	WeakHoldScore  int
}

// DefaultThresholds returns the standard band constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SentimentOverallWeight:     0.5,
		SentimentVersatilityWeight: 0.3,
		SentimentPowerWeight:       0.2,
		BullishScore:               35,
		NeutralScore:               25,

		PECheap:     12,
		PEFair:      18,
		PEExpensive: 25,

		YieldHigh:     4,
		YieldModerate: 2,

		PerformanceStrong: 30,
		PerformanceGood:   25,
		PerformanceWeak:   15,

		EfficiencyHigh: 0.8,
		EfficiencyLow:  0.5,

		StrongBuyScore: 5,
		BuyScore:       3,
		HoldScore:      1,
		WeakHoldScore:  -1,
	}
}
