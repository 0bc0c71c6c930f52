// Package march builds the hex-level movement graph on top of the
// navigation grid and answers the two movement queries: budgeted
// reachability and single-target pathfinding.
//
// The graph is rebuilt wholesale whenever the map content hash changes and
// is read-only between rebuilds. Queries are pure functions over the
// current snapshot.
package march

import (
	"log/slog"
	"math"
	"sort"

	"hexmarch/internal/hex"
	"hexmarch/internal/mapdata"
	"hexmarch/internal/nav"
)

// Node is the per-hex movement data, rebuilt wholesale with the graph.
type Node struct {
	ID            hex.ID
	Travel        mapdata.Travel
	HasRoad       bool
	HasSettlement bool
	Water         mapdata.WaterKind
}

// Edge is one directed connection between adjacent hexes. Costs apply when
// entering the To hex. Edges exist only while both endpoint hexes exist.
type Edge struct {
	From, To     hex.ID
	LandCost     float64
	WaterCost    float64
	FlyCost      float64
	CrossesWater bool
	HasCrossing  bool
	HasWaterfall bool
	IsUpstream   bool
}

// FlowSource supplies directional water-flow facts per hex pair. The
// waterway data behind it is out of this package's scope; a nil source
// means no edge is upstream and no edge has a waterfall.
type FlowSource interface {
	IsUpstream(from, to hex.ID) bool
	HasWaterfall(from, to hex.ID) bool
}

type edgeKey struct {
	from, to hex.ID
}

// Graph is the movement graph for one map snapshot.
type Graph struct {
	grid  *nav.Grid
	costs CostTable
	flow  FlowSource

	nodes map[hex.ID]*Node
	edges map[edgeKey]*Edge
	hash  []byte
}

// NewGraph creates an empty graph bound to a navigation grid. flow may be
// nil. Call RebuildIfChanged before querying.
func NewGraph(grid *nav.Grid, costs CostTable, flow FlowSource) *Graph {
	return &Graph{
		grid:  grid,
		costs: costs,
		flow:  flow,
	}
}

// Node returns the node for a hex, or nil if absent.
func (g *Graph) Node(id hex.ID) *Node {
	return g.nodes[id]
}

// Edge returns the directed edge from one hex to an adjacent one, or nil.
func (g *Graph) Edge(from, to hex.ID) *Edge {
	return g.edges[edgeKey{from, to}]
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// RebuildIfChanged rebuilds nodes and edges if the map content hash differs
// from the last build. Returns true when a rebuild happened. An unchanged
// map is a no-op regardless of how often this is called.
func (g *Graph) RebuildIfChanged(m *mapdata.Map) bool {
	h := contentHash(m)
	if g.nodes != nil && string(h) == string(g.hash) {
		return false
	}
	g.rebuild(m)
	g.hash = h
	return true
}

func (g *Graph) rebuild(m *mapdata.Map) {
	nodes := make(map[hex.ID]*Node, len(m.Hexes))
	for _, h := range m.Hexes {
		if !g.grid.Contains(h.ID) {
			continue
		}
		nodes[h.ID] = &Node{
			ID:            h.ID,
			Travel:        h.Travel,
			HasRoad:       h.HasRoad,
			HasSettlement: h.HasSettlement(),
			Water:         h.Water(),
		}
	}

	ids := make([]hex.ID, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Col != ids[j].Col {
			return ids[i].Col < ids[j].Col
		}
		return ids[i].Row < ids[j].Row
	})

	edges := make(map[edgeKey]*Edge, len(nodes)*6)
	for _, from := range ids {
		for _, to := range g.grid.NeighborsOf(from) {
			if nodes[to] == nil {
				continue
			}
			if _, done := edges[edgeKey{from, to}]; done {
				// Both directions were stored from the reverse pass.
				continue
			}
			g.buildEdgePair(nodes, edges, from, to)
		}
	}

	g.nodes = nodes
	g.edges = edges
	slog.Info("movement graph rebuilt", "nodes", len(nodes), "edges", len(edges))
}

// buildEdgePair computes the shared line-sampling facts once per hex pair
// and stores two directed edges, whose costs and flow flags differ by
// direction.
func (g *Graph) buildEdgePair(nodes map[hex.ID]*Node, edges map[edgeKey]*Edge, a, b hex.ID) {
	crossesAB, crossingAB := g.grid.LineBlocking(a, b)
	crossesBA, crossingBA := g.grid.LineBlocking(b, a)
	crosses := crossesAB || crossesBA
	crossing := crossingAB || crossingBA

	edges[edgeKey{a, b}] = g.newEdge(nodes, a, b, crosses, crossing)
	edges[edgeKey{b, a}] = g.newEdge(nodes, b, a, crosses, crossing)
}

func (g *Graph) newEdge(nodes map[hex.ID]*Node, from, to hex.ID, crosses, crossing bool) *Edge {
	e := &Edge{
		From:         from,
		To:           to,
		LandCost:     g.costs.landCost(nodes[to]),
		WaterCost:    g.costs.waterCost(nodes[to]),
		FlyCost:      1,
		CrossesWater: crosses,
		HasCrossing:  crossing,
	}
	if g.flow != nil {
		e.IsUpstream = g.flow.IsUpstream(from, to)
		e.HasWaterfall = g.flow.HasWaterfall(from, to)
	}
	return e
}

// landCost derives the cost of entering a hex on foot: base by travel tier,
// +1 for swamp capped at 3, -1 for road/settlement floored at 1, and open
// water is not enterable on foot at all.
func (c CostTable) landCost(n *Node) float64 {
	if n.Water == mapdata.WaterLake {
		return math.Inf(1)
	}
	var cost float64
	switch n.Travel {
	case mapdata.TravelDifficult:
		cost = c.Difficult
	case mapdata.TravelGreaterDifficult:
		cost = c.GreaterDifficult
	default:
		cost = c.Open
	}
	if n.Water == mapdata.WaterSwamp {
		cost++
		if cost > c.GreaterDifficult {
			cost = c.GreaterDifficult
		}
	}
	if n.HasRoad || n.HasSettlement {
		cost--
		if cost < c.Open {
			cost = c.Open
		}
	}
	return cost
}

// waterCost derives the cost of entering a hex by water: lakes are easy,
// swamps count as difficult water, dry land is unreachable for pure water
// movement.
func (c CostTable) waterCost(n *Node) float64 {
	switch n.Water {
	case mapdata.WaterLake:
		return c.LakeWater
	case mapdata.WaterSwamp:
		return c.SwampWater
	}
	return math.Inf(1)
}
