package source

import (
	"context"
	"testing"
)

func testDocs() ([]ClassDoc, []SpellDoc) {
	classes := []ClassDoc{
		{Name: "Cleric", HitDie: 8, Proficiencies: []string{"Light armor", "Medium armor", "Shields"}, SavingThrows: []string{"WIS", "CHA"}},
		{Name: "Wizard", HitDie: 6, Proficiencies: []string{"Daggers", "Quarterstaffs"}, SavingThrows: []string{"INT", "WIS"}},
		{Name: "Barbarian", HitDie: 12, Proficiencies: []string{"Light armor", "Medium armor", "Shields", "Simple weapons", "Martial weapons"}, SavingThrows: []string{"STR", "CON"}},
	}
	spells := []SpellDoc{
		{Name: "Cure Wounds", Level: 1, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},
		{Name: "Guiding Bolt", Level: 1, Damaging: true, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},
		{Name: "Heal", Level: 6, Components: []string{"V", "S"}, Classes: []string{"Cleric"}},
		{Name: "Fireball", Level: 3, Damaging: true, Components: []string{"V", "S", "M"}, Concentration: false, Classes: []string{"Wizard"}},
		{Name: "Haste", Level: 3, Components: []string{"V", "S", "M"}, Concentration: true, Classes: []string{"Wizard"}},
		{Name: "Protection from Evil and Good", Level: 1, Components: []string{"V", "S", "M"}, Concentration: true, Classes: []string{"Cleric", "Wizard"}},
	}
	return classes, spells
}

func TestDocumentSource_ClassCounts(t *testing.T) {
	classes, spells := testDocs()
	src := NewDocumentSource(classes, spells)
	ctx := context.Background()

	cleric, err := src.ClassCounts(ctx, "Cleric")
	if err != nil {
		t.Fatalf("ClassCounts(Cleric) error = %v", err)
	}
	if cleric.HitDie != 8 || cleric.ProficiencyCount != 3 || cleric.SavingThrowCount != 2 {
		t.Errorf("Cleric base counts = %+v", cleric)
	}
	if cleric.TotalSpells != 4 {
		t.Errorf("Cleric TotalSpells = %d, want 4", cleric.TotalSpells)
	}
	if cleric.DamageSpells != 1 || cleric.UtilitySpells != 3 {
		t.Errorf("Cleric damage/utility = %d/%d, want 1/3", cleric.DamageSpells, cleric.UtilitySpells)
	}
	if cleric.HighLevelSpells != 1 {
		t.Errorf("Cleric HighLevelSpells = %d, want 1", cleric.HighLevelSpells)
	}
	// Cure Wounds, Guiding Bolt, Heal are Cleric-only; the shared ward is not.
	if cleric.UniqueSpells != 3 {
		t.Errorf("Cleric UniqueSpells = %d, want 3", cleric.UniqueSpells)
	}
	if cleric.MaterialSpells != 1 || cleric.ConcentrationSpell != 1 {
		t.Errorf("Cleric material/concentration = %d/%d, want 1/1",
			cleric.MaterialSpells, cleric.ConcentrationSpell)
	}

	wizard, err := src.ClassCounts(ctx, "Wizard")
	if err != nil {
		t.Fatal(err)
	}
	if wizard.TotalSpells != 3 || wizard.MaterialSpells != 3 || wizard.ConcentrationSpell != 2 {
		t.Errorf("Wizard counts = %+v", wizard)
	}
}

func TestDocumentSource_ClassNotFound(t *testing.T) {
	classes, spells := testDocs()
	src := NewDocumentSource(classes, spells)

	if _, err := src.ClassCounts(context.Background(), "Artificer"); err != ErrClassNotFound {
		t.Errorf("error = %v, want ErrClassNotFound", err)
	}
}

func TestDocumentSource_ClassNamesSorted(t *testing.T) {
	classes, spells := testDocs()
	src := NewDocumentSource(classes, spells)

	names, err := src.ClassNames(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Barbarian", "Cleric", "Wizard"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestDocumentSource_NetworkCounts(t *testing.T) {
	classes, spells := testDocs()
	src := NewDocumentSource(classes, spells)
	ctx := context.Background()

	cleric, err := src.NetworkCounts(ctx, "Cleric")
	if err != nil {
		t.Fatal(err)
	}
	if cleric.SpellReach != 4 || cleric.SynergyPartners != 1 {
		t.Errorf("Cleric network = %+v", cleric)
	}

	// Barbarian casts nothing: no graph presence, no error.
	barbarian, err := src.NetworkCounts(ctx, "Barbarian")
	if err != nil {
		t.Fatal(err)
	}
	if barbarian != nil {
		t.Errorf("Barbarian network = %+v, want nil", barbarian)
	}

	total, err := src.TotalSpellCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 6 {
		t.Errorf("TotalSpellCount = %d, want 6", total)
	}
}

func TestDocumentSource_CopiesOnRead(t *testing.T) {
	classes, spells := testDocs()
	src := NewDocumentSource(classes, spells)
	ctx := context.Background()

	first, _ := src.ClassCounts(ctx, "Wizard")
	first.TotalSpells = 999

	second, _ := src.ClassCounts(ctx, "Wizard")
	if second.TotalSpells == 999 {
		t.Error("mutating a returned value leaked into the source")
	}
}
