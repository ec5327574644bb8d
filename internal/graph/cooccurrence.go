// Package graph derives per-class network statistics from spell
// co-occurrence: two classes are connected when at least one spell lists
// them both. The computation is in-process and deterministic; no graph
// database is involved.
package graph

import (
	"sort"

	"heronomics/internal/domain"
)

// Spell is the minimal projection the co-occurrence computation needs.
type Spell struct {
	Name    string
	Classes []string
}

// Compute walks the spell list once and returns the raw network counts per
// class name. SpellReach counts spells listing the class;
// BridgeConnections counts the distinct class pairs the class appears in;
// SynergyPartners counts distinct co-casting classes. For a pairwise
// co-occurrence graph the last two coincide, matching the pair-union the
// metrics were originally defined over.
func Compute(spells []Spell) map[string]*domain.RawNetworkCounts {
	reach := make(map[string]int)
	partners := make(map[string]map[string]struct{})

	for _, s := range spells {
		classes := dedupe(s.Classes)
		for _, c := range classes {
			reach[c]++
			if partners[c] == nil {
				partners[c] = make(map[string]struct{})
			}
			for _, other := range classes {
				if other != c {
					partners[c][other] = struct{}{}
				}
			}
		}
	}

	counts := make(map[string]*domain.RawNetworkCounts, len(reach))
	for name, n := range reach {
		counts[name] = &domain.RawNetworkCounts{
			Name:              name,
			SpellReach:        n,
			BridgeConnections: len(partners[name]),
			SynergyPartners:   len(partners[name]),
		}
	}
	return counts
}

func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}
