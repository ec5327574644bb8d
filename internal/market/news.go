package market

import (
	"fmt"

	"heronomics/internal/domain"
)

// Narrative thresholds. Each rule fires off the instrument's own numbers,
// so the output is as deterministic as the instrument itself.
const (
	newsSurgeChangePercent = 5.0
	newsFallChangePercent  = -5.0
	newsHighPERatio        = 25.0
	newsCheapPERatio       = 10.0
	newsHighYield          = 4.0
	newsSynergyPartners    = 8
	newsHighBeta           = 2.0
	newsLowBeta            = 0.5
	newsMaxItems           = 3
)

// GenerateNews derives up to three headline strings for one instrument.
// Rules are evaluated in a fixed order (move, valuation, payout, network,
// risk) and the list is truncated, so earlier categories win ties.
func GenerateNews(inst *domain.Instrument) []string {
	var items []string

	if inst.DailyChangePercent > newsSurgeChangePercent {
		items = append(items, fmt.Sprintf(
			"%s Corp surges %.1f%% on strong quarterly performance metrics",
			inst.Name, inst.DailyChangePercent))
	} else if inst.DailyChangePercent < newsFallChangePercent {
		items = append(items, fmt.Sprintf(
			"%s falls %.1f%% amid concerns over class balance updates",
			inst.Symbol, -inst.DailyChangePercent))
	}

	if inst.PERatio > newsHighPERatio {
		items = append(items, fmt.Sprintf(
			"Analysts question %s's high valuation with P/E ratio at %.1f",
			inst.Name, inst.PERatio))
	} else if inst.PERatio < newsCheapPERatio {
		items = append(items, fmt.Sprintf(
			"%s trading at attractive valuation, P/E ratio of %.1f",
			inst.Symbol, inst.PERatio))
	}

	if inst.DividendYield > newsHighYield {
		items = append(items, fmt.Sprintf(
			"%s offers attractive %.1f%% dividend yield for income investors",
			inst.Name, inst.DividendYield))
	}

	if inst.SynergyPartners > newsSynergyPartners {
		items = append(items, fmt.Sprintf(
			"%s benefits from strong multiclass synergy partnerships (%d active)",
			inst.Name, inst.SynergyPartners))
	}

	if inst.Beta > newsHighBeta {
		items = append(items, fmt.Sprintf(
			"Volatility warning: %s shows high beta of %v, suitable for risk-tolerant investors",
			inst.Symbol, inst.Beta))
	} else if inst.Beta < newsLowBeta {
		items = append(items, fmt.Sprintf(
			"%s offers defensive characteristics with low beta of %v",
			inst.Name, inst.Beta))
	}

	if len(items) > newsMaxItems {
		items = items[:newsMaxItems]
	}
	return items
}
