package source

import (
	"context"
	"sort"
	"strings"

	"heronomics/internal/domain"
	"heronomics/internal/graph"
)

// ClassDoc is one class document as stored in the classes collection.
type ClassDoc struct {
	Name          string
	HitDie        int
	Proficiencies []string
	SavingThrows  []string
}

// SpellDoc is one spell document. Damaging reflects the presence of a
// damage entry on the stored document; Classes lists every class that can
// cast the spell.
type SpellDoc struct {
	Name          string
	Level         int
	Damaging      bool
	Components    []string
	Concentration bool
	Classes       []string
}

// highLevelThreshold marks the spell levels counted as high level.
const highLevelThreshold = 6

// DocumentSource derives attribute and network counts from in-memory class
// and spell documents. It backs both the fixture dataset and the MongoDB
// loader, and implements AttributeSource and NetworkSource.
type DocumentSource struct {
	names      []string
	attributes map[string]*domain.RawClassCounts
	network    map[string]*domain.RawNetworkCounts
	totalSpell int
}

var (
	_ AttributeSource = (*DocumentSource)(nil)
	_ NetworkSource   = (*DocumentSource)(nil)
)

// NewDocumentSource tallies the documents once up front. Spell membership
// is matched on the exact class name.
func NewDocumentSource(classes []ClassDoc, spells []SpellDoc) *DocumentSource {
	s := &DocumentSource{
		attributes: make(map[string]*domain.RawClassCounts, len(classes)),
		totalSpell: len(spells),
	}

	for _, c := range classes {
		s.names = append(s.names, c.Name)
		s.attributes[c.Name] = &domain.RawClassCounts{
			Name:             c.Name,
			HitDie:           c.HitDie,
			ProficiencyCount: len(c.Proficiencies),
			SavingThrowCount: len(c.SavingThrows),
		}
	}
	sort.Strings(s.names)

	graphSpells := make([]graph.Spell, 0, len(spells))
	for _, sp := range spells {
		graphSpells = append(graphSpells, graph.Spell{Name: sp.Name, Classes: sp.Classes})

		for _, className := range sp.Classes {
			counts, ok := s.attributes[className]
			if !ok {
				continue // spell references a class without a document
			}
			counts.TotalSpells++
			if sp.Damaging {
				counts.DamageSpells++
			} else {
				counts.UtilitySpells++
			}
			if sp.Level >= highLevelThreshold {
				counts.HighLevelSpells++
			}
			if len(sp.Classes) == 1 {
				counts.UniqueSpells++
			}
			if hasMaterialComponent(sp.Components) {
				counts.MaterialSpells++
			}
			if sp.Concentration {
				counts.ConcentrationSpell++
			}
		}
	}

	s.network = graph.Compute(graphSpells)
	return s
}

// ClassNames implements AttributeSource.
func (s *DocumentSource) ClassNames(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}

// ClassCounts implements AttributeSource.
func (s *DocumentSource) ClassCounts(ctx context.Context, name string) (*domain.RawClassCounts, error) {
	counts, ok := s.attributes[name]
	if !ok {
		return nil, ErrClassNotFound
	}
	c := *counts
	return &c, nil
}

// NetworkCounts implements NetworkSource. A class with no spells has no
// graph presence and yields (nil, nil).
func (s *DocumentSource) NetworkCounts(ctx context.Context, name string) (*domain.RawNetworkCounts, error) {
	counts, ok := s.network[name]
	if !ok {
		return nil, nil
	}
	c := *counts
	return &c, nil
}

// TotalSpellCount implements NetworkSource.
func (s *DocumentSource) TotalSpellCount(ctx context.Context) (int, error) {
	return s.totalSpell, nil
}

func hasMaterialComponent(components []string) bool {
	for _, c := range components {
		if strings.EqualFold(c, "M") {
			return true
		}
	}
	return false
}
