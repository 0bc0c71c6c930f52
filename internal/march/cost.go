package march

import (
	"math"

	"hexmarch/internal/mapdata"
)

// Traits is the traveler capability record supplied per query. It is never
// stored in the graph; the same graph serves every traveler kind.
type Traits struct {
	CanFly     bool
	CanSwim    bool
	HasBoats   bool
	Amphibious bool
}

// waterCapable reports whether the traveler can move on water at all.
// Amphibious implies swimming.
func (t Traits) waterCapable() bool {
	return t.CanSwim || t.HasBoats || t.Amphibious
}

// CostTable holds the tunable cost constants of the movement model.
type CostTable struct {
	Open             float64
	Difficult        float64
	GreaterDifficult float64
	LakeWater        float64
	SwampWater       float64
}

// DefaultCostTable returns the standard costs: 1/2/3 land tiers, lake 1 and
// swamp 2 for water movement.
func DefaultCostTable() CostTable {
	return CostTable{
		Open:             1,
		Difficult:        2,
		GreaterDifficult: 3,
		LakeWater:        1,
		SwampWater:       2,
	}
}

// EffectiveCost resolves the cost a traveler pays to use an edge,
// in strict priority order:
//
//  1. Flying ignores terrain and water blocking entirely.
//  2. A water crossing without a bridge/ford stops anyone who cannot move
//     on water.
//  3. A water-classified target hex is entered by water (upstream pays +1);
//     amphibious travelers take the cheaper of water and land entry;
//     everyone else is stopped.
//  4. Otherwise the land cost of the target hex applies.
//
// An unusable edge resolves to +Inf, never to an error.
func (g *Graph) EffectiveCost(e *Edge, tr Traits) float64 {
	if tr.CanFly {
		return e.FlyCost
	}

	if e.CrossesWater && !e.HasCrossing && !tr.waterCapable() {
		return math.Inf(1)
	}

	target := g.nodes[e.To]
	if target == nil {
		return math.Inf(1)
	}

	if target.Water == mapdata.WaterLake || target.Water == mapdata.WaterSwamp {
		water := e.WaterCost
		if e.IsUpstream {
			water++
		}
		if tr.Amphibious {
			return math.Min(water, e.LandCost)
		}
		if tr.waterCapable() {
			return water
		}
		return math.Inf(1)
	}

	return e.LandCost
}
