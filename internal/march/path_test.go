package march

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/internal/hex"
	"hexmarch/internal/mapdata"
)

func TestFindPathStrip(t *testing.T) {
	g := buildGraph(t, stripMap())

	res := g.FindPath(hexA, hexC, 5, Traits{}, nil, nil)

	assert.True(t, res.IsReachable)
	assert.Equal(t, []hex.ID{hexA, hexB, hexC}, res.Path)
	assert.Equal(t, 2.0, res.TotalCost)
	assert.Equal(t, map[hex.ID]float64{hexA: 0, hexB: 1, hexC: 1}, res.HexCosts)
	require.NotNil(t, res.FinalNavCell)
}

func TestFindPathSameHex(t *testing.T) {
	g := buildGraph(t, stripMap())

	res := g.FindPath(hexA, hexA, 0, Traits{}, nil, nil)

	assert.True(t, res.IsReachable)
	assert.Equal(t, []hex.ID{hexA}, res.Path)
	assert.Equal(t, 0.0, res.TotalCost)
}

func TestFindPathExactBudget(t *testing.T) {
	g := buildGraph(t, stripMap())

	res := g.FindPath(hexA, hexC, 2, Traits{}, nil, nil)
	assert.True(t, res.IsReachable, "a route costing exactly the budget succeeds")
}

func TestFindPathBudgetPrefix(t *testing.T) {
	g := buildGraph(t, stripMap())

	res := g.FindPath(hexA, hexC, 1, Traits{}, nil, nil)

	assert.False(t, res.IsReachable)
	assert.Equal(t, []hex.ID{hexA, hexB}, res.Path,
		"the result shows how far the route gets")
	assert.Equal(t, 1.0, res.TotalCost)
}

func TestFindPathRiverBlock(t *testing.T) {
	m := stripMap()
	m.Rivers = []mapdata.River{riverAB()}
	g := buildGraph(t, m)

	res := g.FindPath(hexA, hexB, 5, Traits{}, nil, nil)
	assert.False(t, res.IsReachable)
	assert.Equal(t, []hex.ID{hexA}, res.Path)

	res = g.FindPath(hexA, hexB, 5, Traits{CanSwim: true}, nil, nil)
	assert.True(t, res.IsReachable)
	assert.Equal(t, 1.0, res.TotalCost)

	res = g.FindPath(hexA, hexB, 5, Traits{CanFly: true}, nil, nil)
	assert.True(t, res.IsReachable)
	assert.Equal(t, 1.0, res.TotalCost)
}

func TestFindPathCrossingCancelsBlock(t *testing.T) {
	m := stripMap()
	m.Rivers = []mapdata.River{riverAB()}
	m.Crossings = []mapdata.Crossing{crossingAB()}
	g := buildGraph(t, m)

	res := g.FindPath(hexA, hexB, 5, Traits{}, nil, nil)
	assert.True(t, res.IsReachable)
}

func TestFindPathTargetCell(t *testing.T) {
	g := buildGraph(t, stripMap())

	// B's center cell is (10,6); a nearby passable cell inside B is kept.
	want := hex.Cell{X: 10, Y: 7}
	res := g.FindPath(hexA, hexB, 5, Traits{}, nil, &want)
	require.NotNil(t, res.FinalNavCell)
	assert.Equal(t, want, *res.FinalNavCell)
}

func TestFindPathTargetCellOutsideHexFallsBack(t *testing.T) {
	g := buildGraph(t, stripMap())

	// A cell inside hex A is not a valid sub-target for hex B.
	wrong := hex.Cell{X: 4, Y: 3}
	res := g.FindPath(hexA, hexB, 5, Traits{}, nil, &wrong)
	require.NotNil(t, res.FinalNavCell)
	assert.Equal(t, hex.Cell{X: 10, Y: 6}, *res.FinalNavCell,
		"falls back to B's nearest passable cell")
}

func TestFindPathBlockedTargetCellFallsBack(t *testing.T) {
	m := stripMap()
	blocked := hex.Cell{X: 10, Y: 7}
	m.Lakes = []mapdata.Lake{{Cells: []hex.Cell{blocked}}}
	g := buildGraph(t, m)

	res := g.FindPath(hexA, hexB, 5, Traits{}, nil, &blocked)
	require.NotNil(t, res.FinalNavCell)
	assert.NotEqual(t, blocked, *res.FinalNavCell)
	assert.True(t, g.grid.IsPassable(*res.FinalNavCell))
}

func TestFindPathUnknownOrigin(t *testing.T) {
	g := buildGraph(t, stripMap())

	res := g.FindPath(hex.ID{Col: 9, Row: 9}, hexB, 5, Traits{}, nil, nil)
	assert.False(t, res.IsReachable)
	assert.Empty(t, res.Path)
}

func TestFindPathUnknownTarget(t *testing.T) {
	g := buildGraph(t, stripMap())

	res := g.FindPath(hexA, hex.ID{Col: 9, Row: 9}, 5, Traits{}, nil, nil)
	assert.False(t, res.IsReachable)
	assert.NotEmpty(t, res.Path, "best-effort prefix is still returned")
}

func TestFindPathRoutesAroundLake(t *testing.T) {
	// B becomes open water: a walker must detour through row 1.
	m := stripMap()
	m.Hexes[1].Terrain = mapdata.TerrainLake
	for _, id := range []hex.ID{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}} {
		m.Hexes = append(m.Hexes, mapdata.Hex{
			ID: id, Terrain: mapdata.TerrainPlains, Travel: mapdata.TravelOpen,
		})
	}
	g := buildGraph(t, m)

	res := g.FindPath(hexA, hexC, 5, Traits{}, nil, nil)
	require.True(t, res.IsReachable)
	assert.NotContains(t, res.Path, hexB, "open water is bypassed on foot")
	assert.Equal(t, 4.0, res.TotalCost)

	// A swimmer goes straight across at water cost.
	res = g.FindPath(hexA, hexC, 5, Traits{CanSwim: true}, nil, nil)
	require.True(t, res.IsReachable)
	assert.Equal(t, []hex.ID{hexA, hexB, hexC}, res.Path)
	assert.Equal(t, 2.0, res.TotalCost)
}
