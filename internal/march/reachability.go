package march

import "hexmarch/internal/hex"

// Reach is one entry of a ReachabilityMap.
type Reach struct {
	Cost      float64
	Reachable bool
}

// ReachabilityMap maps every hex attainable within a budget to its minimal
// accumulated cost. Recomputed per query, never cached.
type ReachabilityMap map[hex.ID]Reach

// ReachableHexes returns all hexes reachable from origin within budget for
// the given traits. The origin itself is included at cost 0; a hex exactly
// at the budget boundary is reachable. An unknown origin or negative budget
// yields an empty map.
func (g *Graph) ReachableHexes(origin hex.ID, budget float64, tr Traits, originCell *hex.Cell) ReachabilityMap {
	settled := g.search(origin, budget, tr, originCell)

	out := make(ReachabilityMap, len(settled))
	for id, n := range settled {
		out[id] = Reach{Cost: n.cost, Reachable: true}
	}
	return out
}
