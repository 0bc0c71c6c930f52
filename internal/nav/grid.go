// Package nav owns the scene-level spatial index: per-hex layout geometry,
// the fine-cell obstruction sets rasterized from water features, and the
// lookups pathfinding is built on (point→hex, hex→neighbors, water-crossing
// detection, passable-cell snapping).
//
// Every lookup degrades to a zero value instead of failing: a point outside
// the map, a hex the host has no geometry for, or a fully obstructed hex all
// come back as ok=false and are treated as off-map by callers.
package nav

import (
	"log/slog"
	"sort"

	"hexmarch/internal/hex"
	"hexmarch/internal/mapdata"
)

// MaxSnapCells bounds the breadth-first search used to snap a position to
// the nearest passable cell inside a hex.
const MaxSnapCells = 500

// Grid is the queryable navigation index for one map snapshot. It is built
// in one synchronous pass and read-only afterwards; a map change means a
// full rebuild, never an in-place edit.
type Grid struct {
	layouts map[hex.ID]*Layout
	ids     []hex.ID // sorted, for deterministic scans
	obs     *Obstructions
}

// BuildGrid builds the navigation grid for a map snapshot using the host
// geometry. Hexes without geometry are dropped with a warning.
func BuildGrid(geom Geometry, m *mapdata.Map) *Grid {
	ids := make([]hex.ID, 0, len(m.Hexes))
	for _, h := range m.Hexes {
		ids = append(ids, h.ID)
	}

	layouts := buildLayouts(geom, ids)

	present := make([]hex.ID, 0, len(layouts))
	for id := range layouts {
		present = append(present, id)
	}
	sort.Slice(present, func(i, j int) bool {
		if present[i].Col != present[j].Col {
			return present[i].Col < present[j].Col
		}
		return present[i].Row < present[j].Row
	})

	g := &Grid{
		layouts: layouts,
		ids:     present,
		obs:     rasterize(m, layouts),
	}
	slog.Info("navigation grid built", "hexes", len(g.ids))
	return g
}

// Contains reports whether the hex exists in the grid.
func (g *Grid) Contains(id hex.ID) bool {
	_, ok := g.layouts[id]
	return ok
}

// Layout returns the cached geometry for a hex, or nil if absent.
func (g *Grid) Layout(id hex.ID) *Layout {
	return g.layouts[id]
}

// HexAt returns the hex containing a pixel position. Bounding boxes reject
// most candidates before the ray-casting test runs.
func (g *Grid) HexAt(p Point) (hex.ID, bool) {
	for _, id := range g.ids {
		if g.layouts[id].contains(p) {
			return id, true
		}
	}
	return hex.ID{}, false
}

// NeighborsOf returns the adjacent hexes present in the grid, in the fixed
// neighbor-table order.
func (g *Grid) NeighborsOf(id hex.ID) []hex.ID {
	if !g.Contains(id) {
		return nil
	}
	out := make([]hex.ID, 0, 6)
	for _, n := range id.Neighbors() {
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsPassable reports fine-cell passability (river/lake blocking minus
// crossing/passage overrides).
func (g *Grid) IsPassable(c hex.Cell) bool {
	return g.obs.IsPassable(c)
}

// CenterCell returns the fine cell under a hex's center.
func (g *Grid) CenterCell(id hex.ID) (hex.Cell, bool) {
	l := g.layouts[id]
	if l == nil {
		return hex.Cell{}, false
	}
	return hex.CellAt(l.Center.X, l.Center.Y), true
}

// CrossesWater reports whether the straight line between two hex centers
// passes through a blocked cell with no crossing/passage override. Either
// hex missing from the grid reads as no crossing (the edge will not exist
// anyway).
func (g *Grid) CrossesWater(from, to hex.ID) bool {
	crosses, _ := g.LineBlocking(from, to)
	return crosses
}

// LineBlocking samples the center-to-center line between two hexes and
// reports (crossesWater, hasCrossing): whether any sampled cell blocks
// without an override, and whether any blocked sampled cell carries one.
func (g *Grid) LineBlocking(from, to hex.ID) (bool, bool) {
	fc, ok := g.CenterCell(from)
	if !ok {
		return false, false
	}
	tc, ok := g.CenterCell(to)
	if !ok {
		return false, false
	}
	return g.ScanCells(fc, tc)
}

// ScanCells runs the blocking scan between two arbitrary fine cells. Used
// directly when a traveler starts from a sub-hex position rather than the
// hex center.
func (g *Grid) ScanCells(from, to hex.Cell) (crosses, hasCrossing bool) {
	it := NewLineIterator(from.X, from.Y, to.X, to.Y)
	for it.Next() {
		c := hex.Cell{X: it.X(), Y: it.Y()}
		if !g.obs.blocked(c) {
			continue
		}
		if g.obs.overridden(c) {
			hasCrossing = true
		} else {
			crosses = true
		}
	}
	return crosses, hasCrossing
}

// NearestPassableCellInHex returns the hex's center cell if passable, else
// the nearest passable cell found by a bounded cardinal BFS that never
// leaves the hex. ok=false means the hex is entirely obstructed (or absent)
// and unusable as a position.
func (g *Grid) NearestPassableCellInHex(id hex.ID) (hex.Cell, bool) {
	l := g.layouts[id]
	if l == nil {
		return hex.Cell{}, false
	}
	start := hex.CellAt(l.Center.X, l.Center.Y)
	if g.obs.IsPassable(start) {
		return start, true
	}

	visited := map[hex.Cell]struct{}{start: {}}
	queue := []hex.Cell{start}
	for len(queue) > 0 && len(visited) <= MaxSnapCells {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Cardinals() {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			cx, cy := n.Center()
			if !l.contains(Point{X: cx, Y: cy}) {
				continue
			}
			if g.obs.IsPassable(n) {
				return n, true
			}
			queue = append(queue, n)
		}
	}
	return hex.Cell{}, false
}

// CellInfo is the debug view of one fine cell, for developer tooling only.
type CellInfo struct {
	Cell         hex.Cell
	Hex          hex.ID
	OnMap        bool
	RiverBlocked bool
	LakeBlocked  bool
	Crossing     bool
	Passage      bool
	Passable     bool
}

// CellInfoAt reports the cell diagnostics for a pixel position.
func (g *Grid) CellInfoAt(p Point) CellInfo {
	c := hex.CellAt(p.X, p.Y)
	info := CellInfo{Cell: c, Passable: g.obs.IsPassable(c)}
	_, info.RiverBlocked = g.obs.riverBlocked[c]
	_, info.LakeBlocked = g.obs.lakeBlocked[c]
	_, info.Crossing = g.obs.crossing[c]
	_, info.Passage = g.obs.passage[c]
	if id, ok := g.HexAt(p); ok {
		info.Hex = id
		info.OnMap = true
	}
	return info
}
