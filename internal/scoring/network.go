package scoring

import (
	"math"

	"heronomics/internal/domain"
)

// Normalization denominators for the graph scores.
const (
	centralityDivisor = 100.0
	influenceScale    = 100.0
)

// ComputeNetworkProfile normalizes raw graph counts into comparable scalar
// scores. totalSpells is the global spell count used as the fixed influence
// denominator. A nil counts value or a zero denominator yields a neutral
// all-zero profile, never an error.
func ComputeNetworkProfile(name string, counts *domain.RawNetworkCounts, totalSpells int) *domain.NetworkProfile {
	profile := &domain.NetworkProfile{Name: name}
	if counts == nil || totalSpells <= 0 {
		return profile
	}

	influence := float64(counts.SpellReach) / float64(totalSpells) * influenceScale

	profile.CentralityScore = float64(counts.SpellReach) / centralityDivisor
	profile.NetworkInfluence = math.Round(influence*100) / 100
	profile.BridgeConnections = counts.BridgeConnections
	profile.SynergyPartners = counts.SynergyPartners
	return profile
}
