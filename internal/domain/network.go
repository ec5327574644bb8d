package domain

// RawNetworkCounts holds per-class relationship counts derived from the
// class-spell graph.
type RawNetworkCounts struct {
	Name              string `json:"name"`
	SpellReach        int    `json:"spell_reach"`        // spells this class can cast
	BridgeConnections int    `json:"bridge_connections"` // distinct class pairs sharing >=1 spell that include this class
	SynergyPartners   int    `json:"synergy_partners"`   // distinct other classes sharing >=1 spell
}

// NetworkProfile holds the normalized graph scores for one class.
// A class with no graph presence has the zero value, which is valid.
type NetworkProfile struct {
	Name              string  `json:"name"`
	CentralityScore   float64 `json:"centrality_score"`
	NetworkInfluence  float64 `json:"network_influence"` // percentage of total spell mass
	BridgeConnections int     `json:"bridge_connections"`
	SynergyPartners   int     `json:"synergy_partnerships"`
}
