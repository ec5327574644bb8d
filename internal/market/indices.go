package market

import (
	"math"

	"heronomics/internal/domain"
)

// ComputeIndices builds the overall index plus the two sector indices from
// an assembled instrument set. Each index weights its constituents' daily
// change by market cap share; an index with no constituents (or zero total
// cap) stays at the base value.
func ComputeIndices(instruments []*domain.Instrument) map[string]domain.MarketIndex {
	indices := map[string]domain.MarketIndex{
		domain.IndexOverall: capWeightedIndex(domain.IndexOverall, instruments),
		domain.IndexCaster:  capWeightedIndex(domain.IndexCaster, filterSector(instruments, domain.SectorCaster)),
		domain.IndexMartial: capWeightedIndex(domain.IndexMartial, filterSector(instruments, domain.SectorMartial)),
	}
	return indices
}

func capWeightedIndex(name string, instruments []*domain.Instrument) domain.MarketIndex {
	idx := domain.NewMarketIndex(name)
	if len(instruments) == 0 {
		return idx
	}

	totalCap := 0.0
	for _, inst := range instruments {
		totalCap += inst.MarketCap
	}
	if totalCap <= 0 {
		return idx
	}

	weightedChange := 0.0
	for _, inst := range instruments {
		weightedChange += inst.MarketCap / totalCap * inst.DailyChangePercent
	}

	idx.ChangePercent = round2(weightedChange)
	idx.Value = round2(domain.IndexBaseValue * (1 + weightedChange/100))
	return idx
}

func filterSector(instruments []*domain.Instrument, sector domain.Sector) []*domain.Instrument {
	var out []*domain.Instrument
	for _, inst := range instruments {
		if domain.SectorOf(inst.Name) == sector {
			out = append(out, inst)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
