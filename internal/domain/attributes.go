package domain

// RawClassCounts holds the raw attribute tallies for one class, as loaded
// from the class/spell document collections. Absent optional counts are zero.
type RawClassCounts struct {
	Name             string `json:"name"`
	HitDie           int    `json:"hit_die"`
	ProficiencyCount int    `json:"proficiency_count"`
	SavingThrowCount int    `json:"saving_throw_count"`

	TotalSpells        int `json:"total_spells"`
	DamageSpells       int `json:"damage_spells"`        // spells with a damage entry
	UtilitySpells      int `json:"utility_spells"`       // spells without a damage entry
	HighLevelSpells    int `json:"high_level_spells"`    // spell level >= 6
	UniqueSpells       int `json:"unique_spells"`        // castable by this class only
	MaterialSpells     int `json:"material_spells"`      // require a material component
	ConcentrationSpell int `json:"concentration_spells"` // require concentration
}

// ClassScoreProfile holds the composite scores derived from RawClassCounts.
// Computed once per simulation run; immutable afterward.
type ClassScoreProfile struct {
	Name string `json:"name"`

	PowerScore          float64 `json:"power_score"`
	SurvivabilityScore  float64 `json:"survivability_score"`
	VersatilityScore    float64 `json:"versatility_score"`
	SpecializationRatio float64 `json:"specialization_ratio"` // in [0,1]
	OverallPerformance  float64 `json:"overall_performance"`

	ResourceEfficiency      float64 `json:"resource_efficiency"`      // in [0,1]
	ConcentrationDependency float64 `json:"concentration_dependency"` // in [0,1]

	TotalSpells      int `json:"total_spells"`
	HitDie           int `json:"hit_die"`
	ProficiencyCount int `json:"proficiency_count"`
	SavingThrowCount int `json:"saving_throw_count"`
}
