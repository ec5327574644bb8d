package domain

// Index identifiers. DND_500 covers the whole market; the sector indices
// cover the static memberships in sector.go.
const (
	IndexOverall = "DND_500"
	IndexCaster  = "CASTER_INDEX"
	IndexMartial = "MARTIAL_INDEX"
)

// IndexBaseValue is the value of an index with zero aggregate change.
const IndexBaseValue = 100.0

// MarketIndex is a capitalization-weighted aggregate over a set of
// instruments. An index with no live constituents keeps the base value.
type MarketIndex struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"change"`
}

// NewMarketIndex returns an index at the base value.
func NewMarketIndex(name string) MarketIndex {
	return MarketIndex{Name: name, Value: IndexBaseValue, ChangePercent: 0}
}
