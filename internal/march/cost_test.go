package march

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/internal/mapdata"
)

func TestEffectiveCostFlightBypass(t *testing.T) {
	m := stripMap()
	m.Rivers = []mapdata.River{riverAB()}
	g := buildGraph(t, m)

	e := g.Edge(hexA, hexB)
	require.True(t, e.CrossesWater)

	assert.Equal(t, 1.0, g.EffectiveCost(e, Traits{CanFly: true}),
		"flight ignores river blocking")
	assert.True(t, math.IsInf(g.EffectiveCost(e, Traits{}), 1),
		"the same edge stops a walker")
}

func TestEffectiveCostSwimAcrossRiver(t *testing.T) {
	m := stripMap()
	m.Rivers = []mapdata.River{riverAB()}
	g := buildGraph(t, m)

	e := g.Edge(hexA, hexB)

	// Crossing into dry land: the water lets the swimmer through, entry is
	// still paid at land cost.
	assert.Equal(t, 1.0, g.EffectiveCost(e, Traits{CanSwim: true}))
	assert.Equal(t, 1.0, g.EffectiveCost(e, Traits{HasBoats: true}))
}

func TestEffectiveCostCrossingCancelsBlock(t *testing.T) {
	m := stripMap()
	m.Rivers = []mapdata.River{riverAB()}
	m.Crossings = []mapdata.Crossing{crossingAB()}
	g := buildGraph(t, m)

	assert.Equal(t, 1.0, g.EffectiveCost(g.Edge(hexA, hexB), Traits{}),
		"a bridge lets a plain walker through")
}

func TestEffectiveCostWaterTarget(t *testing.T) {
	m := stripMap()
	m.Hexes[1].Terrain = mapdata.TerrainLake
	g := buildGraph(t, m)

	e := g.Edge(hexA, hexB)

	assert.True(t, math.IsInf(g.EffectiveCost(e, Traits{}), 1),
		"walker cannot enter open water")
	assert.Equal(t, 1.0, g.EffectiveCost(e, Traits{CanSwim: true}))
	assert.Equal(t, 1.0, g.EffectiveCost(e, Traits{HasBoats: true}))
	assert.Equal(t, 1.0, g.EffectiveCost(e, Traits{CanFly: true}))
}

func TestEffectiveCostUpstreamPenalty(t *testing.T) {
	m := stripMap()
	m.Hexes[1].Terrain = mapdata.TerrainLake
	grid := buildGraph(t, m).grid

	flow := flowStub{upstream: map[edgeKey]bool{{hexA, hexB}: true}}
	g := NewGraph(grid, DefaultCostTable(), flow)
	require.True(t, g.RebuildIfChanged(m))

	assert.Equal(t, 2.0, g.EffectiveCost(g.Edge(hexA, hexB), Traits{CanSwim: true}),
		"against the current costs one more")
	assert.Equal(t, 1.0, g.EffectiveCost(g.Edge(hexB, hexA), Traits{CanSwim: true}))
}

func TestEffectiveCostAmphibiousPicksCheaper(t *testing.T) {
	m := stripMap()
	m.Hexes[1].Terrain = mapdata.TerrainSwamp
	m.Hexes[1].Travel = mapdata.TravelOpen
	g := buildGraph(t, m)

	e := g.Edge(hexA, hexB)
	// Swamp: water entry costs 2, land entry costs 1+1=2 -> equal here.
	assert.Equal(t, 2.0, g.EffectiveCost(e, Traits{Amphibious: true}))

	// With a road the land entry drops to 1 and must win.
	m.Hexes[1].HasRoad = true
	require.True(t, g.RebuildIfChanged(m))
	assert.Equal(t, 1.0, g.EffectiveCost(g.Edge(hexA, hexB), Traits{Amphibious: true}))
}

func TestEffectiveCostSwampNeedsWaterCapability(t *testing.T) {
	m := stripMap()
	m.Hexes[1].Terrain = mapdata.TerrainSwamp
	g := buildGraph(t, m)

	e := g.Edge(hexA, hexB)
	assert.True(t, math.IsInf(g.EffectiveCost(e, Traits{}), 1),
		"deep marsh stops a plain walker")
	assert.Equal(t, 2.0, g.EffectiveCost(e, Traits{CanSwim: true}))
}
