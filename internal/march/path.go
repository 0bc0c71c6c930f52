package march

import (
	"hexmarch/internal/hex"
	"hexmarch/internal/nav"
)

// PathResult is the outcome of a FindPath query. Path is never nil for a
// known origin: when the target is out of reach it holds the best-effort
// prefix toward it so the caller can show how far the route gets.
type PathResult struct {
	Path        []hex.ID
	TotalCost   float64
	IsReachable bool
	// HexCosts records the marginal cost paid entering each hex on Path
	// (0 for the origin), for per-segment display without a second pass.
	HexCosts map[hex.ID]float64
	// FinalNavCell is the sub-hex cell at the path's end, used to seed the
	// next query so movement flows instead of re-snapping to hex centers.
	FinalNavCell *hex.Cell
}

// FindPath searches for the cheapest route from origin to target within
// budget. targetCell, when given, requests sub-hex precision: it is used
// as-is if passable and inside the target hex, otherwise the nearest
// passable cell in that hex is substituted.
func (g *Graph) FindPath(origin, target hex.ID, budget float64, tr Traits, originCell, targetCell *hex.Cell) PathResult {
	if g.nodes[origin] == nil {
		return PathResult{HexCosts: map[hex.ID]float64{}}
	}

	if origin == target {
		res := PathResult{
			Path:        []hex.ID{origin},
			IsReachable: true,
			HexCosts:    map[hex.ID]float64{origin: 0},
		}
		res.FinalNavCell = g.resolveEndCell(target, targetCell)
		return res
	}

	settled := g.search(origin, budget, tr, originCell)

	end := settled[target]
	reached := end != nil
	if !reached {
		end = g.bestApproach(settled, target)
	}
	if end == nil {
		// Negative budget: not even the origin is settled.
		return PathResult{HexCosts: map[hex.ID]float64{}}
	}

	res := PathResult{
		TotalCost:   end.cost,
		IsReachable: reached,
		HexCosts:    make(map[hex.ID]float64),
	}
	for n := end; n != nil; n = n.prev {
		res.Path = append(res.Path, n.id)
		res.HexCosts[n.id] = n.stepCost
	}
	for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
		res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
	}

	final := res.Path[len(res.Path)-1]
	if reached {
		res.FinalNavCell = g.resolveEndCell(final, targetCell)
	} else {
		res.FinalNavCell = g.resolveEndCell(final, nil)
	}
	return res
}

// bestApproach picks the settled hex closest to the target (by hex
// distance, then cheaper cost, then id order) as the best-effort prefix
// end. The origin is always settled, so the result is never nil.
func (g *Graph) bestApproach(settled map[hex.ID]*searchNode, target hex.ID) *searchNode {
	var best *searchNode
	bestDist := 0
	for _, n := range settled {
		d := hex.Distance(n.id, target)
		if best == nil || d < bestDist ||
			d == bestDist && (n.cost < best.cost ||
				n.cost == best.cost && idLess(n.id, best.id)) {
			best = n
			bestDist = d
		}
	}
	return best
}

// resolveEndCell validates a requested sub-hex cell against the grid and
// falls back to the nearest passable cell in the hex. nil means the hex is
// entirely obstructed or unknown.
func (g *Graph) resolveEndCell(id hex.ID, want *hex.Cell) *hex.Cell {
	if want != nil && g.grid.IsPassable(*want) {
		cx, cy := want.Center()
		if at, ok := g.grid.HexAt(nav.Point{X: cx, Y: cy}); ok && at == id {
			c := *want
			return &c
		}
	}
	c, ok := g.grid.NearestPassableCellInHex(id)
	if !ok {
		return nil
	}
	return &c
}

func idLess(a, b hex.ID) bool {
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Row < b.Row
}
