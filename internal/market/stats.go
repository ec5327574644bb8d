package market

import (
	"sort"

	"heronomics/internal/domain"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanPositive averages only the strictly positive values. Instruments with
// non-positive earnings carry a zero P/E that would otherwise drag the
// market average down.
func MeanPositive(values []float64) float64 {
	var kept []float64
	for _, v := range values {
		if v > 0 {
			kept = append(kept, v)
		}
	}
	return Mean(kept)
}

// Median returns the median of values, averaging the middle pair for even
// lengths, or 0 for an empty slice. The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// TotalMarketCap sums market capitalization across instruments.
func TotalMarketCap(instruments []*domain.Instrument) float64 {
	total := 0.0
	for _, inst := range instruments {
		total += inst.MarketCap
	}
	return total
}
