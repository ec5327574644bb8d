package pricing

import "heronomics/internal/domain"

// Supply factor normalizers.
const (
	hitDieNormalizer      = 12.0
	spellCountNormalizer  = 100.0
	partnershipNormalizer = 10.0
)

// ComputeOutstandingShares derives the share float from accessibility and
// network popularity, clamped to [SharesMin, SharesMax] so market caps can
// never degenerate.
func ComputeOutstandingShares(score *domain.ClassScoreProfile, network *domain.NetworkProfile, params domain.MarketParams) int64 {
	hitDie := 0
	totalSpells := 0
	if score != nil {
		hitDie = score.HitDie
		totalSpells = score.TotalSpells
	}

	influence := 0.0
	partners := 0
	if network != nil {
		influence = network.NetworkInfluence
		partners = network.SynergyPartners
	}

	accessibilityFactor := float64(hitDie)/hitDieNormalizer + float64(totalSpells)/spellCountNormalizer
	popularityFactor := influence/influenceNormalizer + float64(partners)/partnershipNormalizer

	shares := int64(float64(params.BaseShareCount) * (1.0 + accessibilityFactor + popularityFactor))

	if shares < domain.SharesMin {
		return domain.SharesMin
	}
	if shares > domain.SharesMax {
		return domain.SharesMax
	}
	return shares
}
