package nav

import (
	"log/slog"
	"sort"

	"hexmarch/internal/hex"
	"hexmarch/internal/mapdata"
)

// Obstructions is the rasterizer output: disjoint fine-cell sets for river
// and lake blocking plus two override sets that cancel blocking. The sets
// are built in one pass per rebuild and read-only afterwards.
type Obstructions struct {
	riverBlocked map[hex.Cell]struct{}
	lakeBlocked  map[hex.Cell]struct{}
	crossing     map[hex.Cell]struct{}
	passage      map[hex.Cell]struct{}
}

func newObstructions() *Obstructions {
	return &Obstructions{
		riverBlocked: make(map[hex.Cell]struct{}),
		lakeBlocked:  make(map[hex.Cell]struct{}),
		crossing:     make(map[hex.Cell]struct{}),
		passage:      make(map[hex.Cell]struct{}),
	}
}

// IsPassable reports whether a fine cell can be occupied: not blocked by a
// river or lake, or blocked but overridden by a crossing/passage marker.
func (o *Obstructions) IsPassable(c hex.Cell) bool {
	if _, cross := o.crossing[c]; cross {
		return true
	}
	if _, pass := o.passage[c]; pass {
		return true
	}
	if _, river := o.riverBlocked[c]; river {
		return false
	}
	if _, lake := o.lakeBlocked[c]; lake {
		return false
	}
	return true
}

// blocked reports raw river/lake blocking, ignoring overrides.
func (o *Obstructions) blocked(c hex.Cell) bool {
	if _, river := o.riverBlocked[c]; river {
		return true
	}
	_, lake := o.lakeBlocked[c]
	return lake
}

// overridden reports whether a crossing or passage marker covers the cell.
func (o *Obstructions) overridden(c hex.Cell) bool {
	if _, cross := o.crossing[c]; cross {
		return true
	}
	_, pass := o.passage[c]
	return pass
}

// rasterize converts all water features of a map into cell sets. The result
// depends only on the feature geometry, never on input ordering: cell lists
// are unioned into sets and polylines are explicitly sorted before walking.
func rasterize(m *mapdata.Map, layouts map[hex.ID]*Layout) *Obstructions {
	o := newObstructions()

	for i := range m.Rivers {
		o.rasterizeRiver(&m.Rivers[i], layouts)
	}
	for _, lake := range m.Lakes {
		for _, c := range lake.Cells {
			o.lakeBlocked[c] = struct{}{}
		}
	}
	for _, cr := range m.Crossings {
		for _, c := range cr.Cells {
			o.crossing[c] = struct{}{}
		}
	}
	for _, p := range m.Passages {
		for _, c := range p.Cells {
			o.passage[c] = struct{}{}
		}
	}

	slog.Debug("water features rasterized",
		"river_cells", len(o.riverBlocked),
		"lake_cells", len(o.lakeBlocked),
		"crossing_cells", len(o.crossing),
		"passage_cells", len(o.passage))
	return o
}

// rasterizeRiver picks the cheapest available representation: verbatim cell
// lists, then ordered cell polylines, then legacy pixel-anchored polylines.
func (o *Obstructions) rasterizeRiver(r *mapdata.River, layouts map[hex.ID]*Layout) {
	switch {
	case len(r.Cells) > 0:
		// Pre-rasterized cells were thickened when first drawn; use verbatim.
		for _, c := range r.Cells {
			o.riverBlocked[c] = struct{}{}
		}

	case len(r.Path) > 0:
		pts := make([]mapdata.PathPoint, len(r.Path))
		copy(pts, r.Path)
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Order < pts[j].Order })
		for i := 0; i+1 < len(pts); i++ {
			o.blockLine(pts[i].Cell, pts[i+1].Cell)
		}
		if len(pts) == 1 {
			o.blockThickened(pts[0].Cell)
		}

	case len(r.Legacy) > 0:
		cells := make([]hex.Cell, 0, len(r.Legacy))
		for _, a := range r.Legacy {
			p, ok := resolveAnchor(a, layouts)
			if !ok {
				slog.Warn("river anchor on missing hex, skipping point",
					"river", r.Name, "hex", a.Hex.String())
				continue
			}
			cells = append(cells, hex.CellAt(p.X, p.Y))
		}
		for i := 0; i+1 < len(cells); i++ {
			o.blockLine(cells[i], cells[i+1])
		}
		if len(cells) == 1 {
			o.blockThickened(cells[0])
		}
	}
}

// blockLine walks the Bresenham line between two cells and blocks every
// sampled cell, thickened.
func (o *Obstructions) blockLine(from, to hex.Cell) {
	it := NewLineIterator(from.X, from.Y, to.X, to.Y)
	for it.Next() {
		o.blockThickened(hex.Cell{X: it.X(), Y: it.Y()})
	}
}

// blockThickened blocks a cell and its four cardinal neighbors. The
// thickening guarantees a diagonal river run cannot be stepped over through
// a corner gap.
func (o *Obstructions) blockThickened(c hex.Cell) {
	o.riverBlocked[c] = struct{}{}
	for _, n := range c.Cardinals() {
		o.riverBlocked[n] = struct{}{}
	}
}

// resolveAnchor turns a legacy polyline anchor into a pixel point using the
// hex layout: the center, a corner vertex, or an edge midpoint.
func resolveAnchor(a mapdata.Anchor, layouts map[hex.ID]*Layout) (Point, bool) {
	l, ok := layouts[a.Hex]
	if !ok {
		return Point{}, false
	}
	switch a.Kind {
	case mapdata.AnchorCenter:
		return l.Center, true
	case mapdata.AnchorCorner:
		return l.Vertices[a.Index%6], true
	case mapdata.AnchorEdge:
		v1 := l.Vertices[a.Index%6]
		v2 := l.Vertices[(a.Index+1)%6]
		return Point{X: (v1.X + v2.X) / 2, Y: (v1.Y + v2.Y) / 2}, true
	}
	return Point{}, false
}
