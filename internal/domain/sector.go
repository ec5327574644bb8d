package domain

// Sector is a named subset of classes used for sector indices and the
// sector breakdown in reports.
type Sector string

const (
	SectorCaster  Sector = "caster"
	SectorMartial Sector = "martial"
)

// Static sector memberships. A class absent from both sectors still
// contributes to the overall index, just to no sector index.
var (
	CasterClasses = []string{"Bard", "Cleric", "Druid", "Sorcerer", "Warlock", "Wizard"}

	MartialClasses = []string{"Barbarian", "Fighter", "Monk", "Paladin", "Ranger", "Rogue"}
)

// SectorOf returns the sector a class belongs to, or "" if none.
func SectorOf(name string) Sector {
	for _, c := range CasterClasses {
		if c == name {
			return SectorCaster
		}
	}
	for _, c := range MartialClasses {
		if c == name {
			return SectorMartial
		}
	}
	return ""
}
