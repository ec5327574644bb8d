// Package scoring turns raw class attribute counts and graph counts into
// the composite score profiles consumed by the pricing models. Every score
// is a fixed weighted linear combination; the same calculator is used at
// every call site so the formulas cannot drift.
package scoring

import "heronomics/internal/domain"

// Weights for the composite scores.
const (
	powerDamageWeight    = 1.5
	powerHighLevelWeight = 2.0
	powerUniqueWeight    = 1.2

	survivabilityHitDieWeight      = 3.0
	survivabilitySaveWeight        = 2.0
	survivabilityProficiencyWeight = 0.5

	versatilityUtilityWeight     = 1.0
	versatilityProficiencyWeight = 1.5
	versatilityTotalWeight       = 0.1

	overallPowerWeight         = 0.4
	overallSurvivabilityWeight = 0.3
	overallVersatilityWeight   = 0.3
)

// ComputeScoreProfile derives the composite score profile for one class.
// Absent counts are zero and produce zero contributions; there are no error
// conditions.
func ComputeScoreProfile(c *domain.RawClassCounts) *domain.ClassScoreProfile {
	power := powerDamageWeight*float64(c.DamageSpells) +
		powerHighLevelWeight*float64(c.HighLevelSpells) +
		powerUniqueWeight*float64(c.UniqueSpells)

	survivability := survivabilityHitDieWeight*float64(c.HitDie) +
		survivabilitySaveWeight*float64(c.SavingThrowCount) +
		survivabilityProficiencyWeight*float64(c.ProficiencyCount)

	versatility := versatilityUtilityWeight*float64(c.UtilitySpells) +
		versatilityProficiencyWeight*float64(c.ProficiencyCount) +
		versatilityTotalWeight*float64(c.TotalSpells)

	overall := overallPowerWeight*power +
		overallSurvivabilityWeight*survivability +
		overallVersatilityWeight*versatility

	specialization := 0.0
	efficiency := 1.0
	concentration := 0.0
	if c.TotalSpells > 0 {
		specialization = float64(c.UniqueSpells) / float64(c.TotalSpells)
		efficiency = 1.0 - float64(c.MaterialSpells)/float64(c.TotalSpells)
		concentration = float64(c.ConcentrationSpell) / float64(c.TotalSpells)
	}

	return &domain.ClassScoreProfile{
		Name:                    c.Name,
		PowerScore:              power,
		SurvivabilityScore:      survivability,
		VersatilityScore:        versatility,
		SpecializationRatio:     specialization,
		OverallPerformance:      overall,
		ResourceEfficiency:      efficiency,
		ConcentrationDependency: concentration,
		TotalSpells:             c.TotalSpells,
		HitDie:                  c.HitDie,
		ProficiencyCount:        c.ProficiencyCount,
		SavingThrowCount:        c.SavingThrowCount,
	}
}
