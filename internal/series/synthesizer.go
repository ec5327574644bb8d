// Package series synthesizes the deterministic daily price/volume history
// for one instrument. The walk decomposes into a performance trend, a
// weekly cycle, and a hash-seeded pseudo-noise term keyed by class name and
// day index, so the same inputs always reproduce the same history.
package series

import (
	"math"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/idhash"
)

// Walk shape constants.
const (
	trendPerformanceCenter = 25.0
	trendDivisor           = 10000.0

	volatilityScale = 0.01
	cycleWeight     = 0.5
	priceCycleDays  = 7.0

	priceFloorRatio   = 0.7
	priceCeilingRatio = 1.4

	volumeCycleDays      = 5.0
	volumeCycleAmplitude = 0.3
	volumeInfluenceScale = 50.0
	volumePerformScale   = 200.0
	volumeFloor          = 10000
)

// Input carries the per-class figures the walk depends on.
type Input struct {
	Name                string
	BasePrice           float64
	Beta                float64
	OverallPerformance  float64
	SpecializationRatio float64
	NetworkInfluence    float64
}

// Generate produces params.HistoryDays consecutive daily points ending on
// today, oldest first. Prices are clamped each step to
// [0.7, 1.4] x BasePrice and rounded to 2 decimals in the output; volumes
// never fall below the floor.
func Generate(in Input, params domain.MarketParams, today time.Time) []domain.PricePoint {
	days := params.HistoryDays

	trend := (in.OverallPerformance - trendPerformanceCenter) / trendDivisor
	volatility := in.SpecializationRatio * in.Beta * volatilityScale

	floor := in.BasePrice * priceFloorRatio
	ceiling := in.BasePrice * priceCeilingRatio

	volumeMultiplier := 1.0 + in.NetworkInfluence/volumeInfluenceScale +
		in.OverallPerformance/volumePerformScale

	history := make([]domain.PricePoint, 0, days)
	price := in.BasePrice

	for i := 0; i < days; i++ {
		cycle := math.Sin(2*math.Pi*float64(i)/priceCycleDays) * volatility * cycleWeight
		noise := (idhash.NoiseSeed(in.Name, i) - 0.5) * volatility * 2

		price *= 1 + trend + cycle + noise
		price = math.Max(floor, math.Min(ceiling, price))

		volumeVariation := math.Sin(2*math.Pi*float64(i)/volumeCycleDays) * volumeCycleAmplitude
		volume := int64(float64(params.BaseDailyVolume) * volumeMultiplier * (1 + volumeVariation))
		if volume < volumeFloor {
			volume = volumeFloor
		}

		date := today.AddDate(0, 0, -(days - 1 - i))
		history = append(history, domain.PricePoint{
			Date:   date.Format("2006-01-02"),
			Price:  math.Round(price*100) / 100,
			Volume: volume,
		})
	}

	return history
}
