// Package fixtures carries a small deterministic SRD dataset covering all
// twelve base classes. It backs tests and the -use-fixtures run mode, so
// the full pipeline works with no database at all.
package fixtures

import "heronomics/internal/source"

// New returns a document source over the fixture dataset.
func New() *source.DocumentSource {
	return source.NewDocumentSource(Classes(), Spells())
}

// Classes returns the twelve base class documents.
func Classes() []source.ClassDoc {
	return []source.ClassDoc{
		{Name: "Barbarian", HitDie: 12,
			Proficiencies: []string{"Light armor", "Medium armor", "Shields", "Simple weapons", "Martial weapons"},
			SavingThrows:  []string{"STR", "CON"}},
		{Name: "Bard", HitDie: 8,
			Proficiencies: []string{"Light armor", "Simple weapons", "Hand crossbows", "Longswords", "Rapiers", "Shortswords"},
			SavingThrows:  []string{"DEX", "CHA"}},
		{Name: "Cleric", HitDie: 8,
			Proficiencies: []string{"Light armor", "Medium armor", "Shields", "Simple weapons"},
			SavingThrows:  []string{"WIS", "CHA"}},
		{Name: "Druid", HitDie: 8,
			Proficiencies: []string{"Light armor", "Medium armor", "Shields", "Clubs", "Daggers", "Scimitars"},
			SavingThrows:  []string{"INT", "WIS"}},
		{Name: "Fighter", HitDie: 10,
			Proficiencies: []string{"All armor", "Shields", "Simple weapons", "Martial weapons"},
			SavingThrows:  []string{"STR", "CON"}},
		{Name: "Monk", HitDie: 8,
			Proficiencies: []string{"Simple weapons", "Shortswords"},
			SavingThrows:  []string{"STR", "DEX"}},
		{Name: "Paladin", HitDie: 10,
			Proficiencies: []string{"All armor", "Shields", "Simple weapons", "Martial weapons"},
			SavingThrows:  []string{"WIS", "CHA"}},
		{Name: "Ranger", HitDie: 10,
			Proficiencies: []string{"Light armor", "Medium armor", "Shields", "Simple weapons", "Martial weapons"},
			SavingThrows:  []string{"STR", "DEX"}},
		{Name: "Rogue", HitDie: 8,
			Proficiencies: []string{"Light armor", "Simple weapons", "Hand crossbows", "Longswords", "Rapiers", "Shortswords"},
			SavingThrows:  []string{"DEX", "INT"}},
		{Name: "Sorcerer", HitDie: 6,
			Proficiencies: []string{"Daggers", "Darts", "Slings", "Quarterstaffs", "Light crossbows"},
			SavingThrows:  []string{"CON", "CHA"}},
		{Name: "Warlock", HitDie: 8,
			Proficiencies: []string{"Light armor", "Simple weapons"},
			SavingThrows:  []string{"WIS", "CHA"}},
		{Name: "Wizard", HitDie: 6,
			Proficiencies: []string{"Daggers", "Darts", "Slings", "Quarterstaffs", "Light crossbows"},
			SavingThrows:  []string{"INT", "WIS"}},
	}
}

// Spells returns a representative spell list. Class memberships follow the
// SRD; Monk, Fighter, Rogue and Barbarian cast nothing, exercising the
// no-graph-presence path.
func Spells() []source.SpellDoc {
	return []source.SpellDoc{
		{Name: "Acid Splash", Level: 0, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Fire Bolt", Level: 0, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Sacred Flame", Level: 0, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},
		{Name: "Eldritch Blast", Level: 0, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Warlock"}},
		{Name: "Vicious Mockery", Level: 0, Damaging: true, Components: []string{"V"}, Classes: []string{"Bard"}},
		{Name: "Druidcraft", Level: 0, Components: []string{"V", "S"}, Classes: []string{"Druid"}},
		{Name: "Guidance", Level: 0, Concentration: true, Components: []string{"V", "S"}, Classes: []string{"Cleric", "Druid"}},
		{Name: "Light", Level: 0, Components: []string{"V", "M"}, Classes: []string{"Bard", "Cleric", "Sorcerer", "Wizard"}},

		{Name: "Bless", Level: 1, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Cleric", "Paladin"}},
		{Name: "Burning Hands", Level: 1, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Charm Person", Level: 1, Components: []string{"V", "S"}, Classes: []string{"Bard", "Druid", "Sorcerer", "Warlock", "Wizard"}},
		{Name: "Cure Wounds", Level: 1, Components: []string{"V", "S"}, Classes: []string{"Bard", "Cleric", "Druid", "Paladin", "Ranger"}},
		{Name: "Detect Magic", Level: 1, Concentration: true, Components: []string{"V", "S"}, Classes: []string{"Bard", "Cleric", "Druid", "Paladin", "Ranger", "Sorcerer", "Wizard"}},
		{Name: "Divine Favor", Level: 1, Damaging: true, Concentration: true, Components: []string{"V", "S"}, Classes: []string{"Paladin"}},
		{Name: "Entangle", Level: 1, Concentration: true, Components: []string{"V", "S"}, Classes: []string{"Druid"}},
		{Name: "Guiding Bolt", Level: 1, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},
		{Name: "Healing Word", Level: 1, Components: []string{"V"}, Classes: []string{"Bard", "Cleric", "Druid"}},
		{Name: "Hex", Level: 1, Damaging: true, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Warlock"}},
		{Name: "Hunter's Mark", Level: 1, Damaging: true, Concentration: true, Components: []string{"V"}, Classes: []string{"Ranger"}},
		{Name: "Magic Missile", Level: 1, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Shield", Level: 1, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Sleep", Level: 1, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Sorcerer", "Wizard"}},

		{Name: "Aid", Level: 2, Components: []string{"V", "S", "M"}, Classes: []string{"Cleric", "Paladin"}},
		{Name: "Darkness", Level: 2, Concentration: true, Components: []string{"V", "M"}, Classes: []string{"Sorcerer", "Warlock", "Wizard"}},
		{Name: "Invisibility", Level: 2, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Sorcerer", "Warlock", "Wizard"}},
		{Name: "Moonbeam", Level: 2, Damaging: true, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Druid"}},
		{Name: "Pass Without Trace", Level: 2, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Druid", "Ranger"}},
		{Name: "Scorching Ray", Level: 2, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Spiritual Weapon", Level: 2, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},

		{Name: "Counterspell", Level: 3, Components: []string{"S"}, Classes: []string{"Sorcerer", "Warlock", "Wizard"}},
		{Name: "Fireball", Level: 3, Damaging: true, Components: []string{"V", "S", "M"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Call Lightning", Level: 3, Damaging: true, Concentration: true, Components: []string{"V", "S"}, Classes: []string{"Druid"}},
		{Name: "Revivify", Level: 3, Components: []string{"V", "S", "M"}, Classes: []string{"Cleric", "Paladin"}},
		{Name: "Spirit Guardians", Level: 3, Damaging: true, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Cleric"}},
		{Name: "Hypnotic Pattern", Level: 3, Concentration: true, Components: []string{"S", "M"}, Classes: []string{"Bard", "Sorcerer", "Warlock", "Wizard"}},

		{Name: "Dimension Door", Level: 4, Components: []string{"V"}, Classes: []string{"Bard", "Sorcerer", "Warlock", "Wizard"}},
		{Name: "Polymorph", Level: 4, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Druid", "Sorcerer", "Wizard"}},
		{Name: "Banishment", Level: 4, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Cleric", "Paladin", "Sorcerer", "Warlock", "Wizard"}},

		{Name: "Cone of Cold", Level: 5, Damaging: true, Components: []string{"V", "S", "M"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Greater Restoration", Level: 5, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Cleric", "Druid"}},
		{Name: "Hold Monster", Level: 5, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Sorcerer", "Warlock", "Wizard"}},

		{Name: "Chain Lightning", Level: 6, Damaging: true, Components: []string{"V", "S", "M"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Heal", Level: 6, Components: []string{"V", "S"}, Classes: []string{"Cleric", "Druid"}},
		{Name: "True Seeing", Level: 6, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Cleric", "Sorcerer", "Warlock", "Wizard"}},
		{Name: "Finger of Death", Level: 7, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Warlock", "Wizard"}},
		{Name: "Regenerate", Level: 7, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Cleric", "Druid"}},
		{Name: "Earthquake", Level: 8, Damaging: true, Concentration: true, Components: []string{"V", "S", "M"}, Classes: []string{"Cleric", "Druid", "Sorcerer"}},
		{Name: "Meteor Swarm", Level: 9, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Sorcerer", "Wizard"}},
		{Name: "Mass Heal", Level: 9, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},
		{Name: "Foresight", Level: 9, Components: []string{"V", "S", "M"}, Classes: []string{"Bard", "Druid", "Warlock", "Wizard"}},
	}
}
