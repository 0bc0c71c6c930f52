package march

import (
	"container/heap"

	"hexmarch/internal/hex"
)

// searchNode is one settled or frontier entry of a movement search.
type searchNode struct {
	id       hex.ID
	cost     float64 // accumulated cost from the origin
	stepCost float64 // marginal cost paid entering this hex
	hops     int
	prev     *searchNode
	index    int // heap index
}

// nodeHeap implements container/heap for the open list (min-heap by
// accumulated cost, ties broken by fewer hops, then id order for
// determinism).
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	if h[i].hops != h[j].hops {
		return h[i].hops < h[j].hops
	}
	if h[i].id.Col != h[j].id.Col {
		return h[i].id.Col < h[j].id.Col
	}
	return h[i].id.Row < h[j].id.Row
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)   { n := x.(*searchNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // GC
	node.index = -1
	*h = old[:n-1]
	return node
}

// search runs a budget-bounded Dijkstra relaxation from origin and returns
// every hex settled at minimal cost <= budget. An origin missing from the
// graph yields an empty result. originCell, when given, replaces the
// origin-side line sampling so a traveler already past a river within its
// hex is not blocked by it again.
func (g *Graph) search(origin hex.ID, budget float64, tr Traits, originCell *hex.Cell) map[hex.ID]*searchNode {
	settled := make(map[hex.ID]*searchNode)
	if g.nodes[origin] == nil || budget < 0 {
		return settled
	}

	best := make(map[hex.ID]*searchNode)
	start := &searchNode{id: origin}
	best[origin] = start

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, start)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if settled[cur.id] != nil {
			continue
		}
		settled[cur.id] = cur

		for _, to := range g.grid.NeighborsOf(cur.id) {
			if settled[to] != nil {
				continue
			}
			e := g.edges[edgeKey{cur.id, to}]
			if e == nil {
				continue
			}
			if cur.id == origin && originCell != nil {
				e = g.edgeFromCell(e, *originCell, to)
			}

			step := g.EffectiveCost(e, tr)
			nc := cur.cost + step
			if nc > budget {
				continue
			}

			if prev := best[to]; prev == nil || nc < prev.cost ||
				nc == prev.cost && cur.hops+1 < prev.hops {
				n := &searchNode{
					id:       to,
					cost:     nc,
					stepCost: step,
					hops:     cur.hops + 1,
					prev:     cur,
				}
				best[to] = n
				heap.Push(open, n)
			}
		}
	}

	return settled
}

// edgeFromCell re-samples an origin edge's water blocking from the
// traveler's actual sub-hex cell instead of the hex center.
func (g *Graph) edgeFromCell(e *Edge, from hex.Cell, to hex.ID) *Edge {
	tc, ok := g.grid.CenterCell(to)
	if !ok {
		return e
	}
	crosses, crossing := g.grid.ScanCells(from, tc)
	resampled := *e
	resampled.CrossesWater = crosses
	resampled.HasCrossing = crossing
	return &resampled
}
