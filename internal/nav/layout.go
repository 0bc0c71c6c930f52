package nav

import (
	"log/slog"

	"hexmarch/internal/hex"
)

// Layout is the cached pixel geometry of one hex: center, the six vertices
// clockwise, and an axis-aligned bounding box for fast point rejection.
// Built once per hex, never mutated afterwards.
type Layout struct {
	Center   Point
	Vertices [6]Point
	MinX     float64
	MinY     float64
	MaxX     float64
	MaxY     float64
}

// buildLayout asks the host geometry for one hex. Returns nil when the host
// has no geometry for the coordinate; the caller logs and skips the hex.
func buildLayout(geom Geometry, id hex.ID) *Layout {
	center, ok := geom.HexCenter(id)
	if !ok {
		return nil
	}
	verts, ok := geom.HexVertices(id)
	if !ok {
		return nil
	}

	l := &Layout{
		Center:   center,
		Vertices: verts,
		MinX:     verts[0].X,
		MinY:     verts[0].Y,
		MaxX:     verts[0].X,
		MaxY:     verts[0].Y,
	}
	for _, v := range verts[1:] {
		if v.X < l.MinX {
			l.MinX = v.X
		}
		if v.Y < l.MinY {
			l.MinY = v.Y
		}
		if v.X > l.MaxX {
			l.MaxX = v.X
		}
		if v.Y > l.MaxY {
			l.MaxY = v.Y
		}
	}
	return l
}

// buildLayouts builds the layout cache for a set of hex ids. Hexes the host
// cannot produce geometry for are omitted (treated as off-map).
func buildLayouts(geom Geometry, ids []hex.ID) map[hex.ID]*Layout {
	layouts := make(map[hex.ID]*Layout, len(ids))
	missing := 0
	for _, id := range ids {
		l := buildLayout(geom, id)
		if l == nil {
			slog.Warn("no geometry for hex, skipping", "hex", id.String())
			missing++
			continue
		}
		layouts[id] = l
	}
	if missing > 0 {
		slog.Info("layout cache built with gaps", "hexes", len(layouts), "missing", missing)
	}
	return layouts
}

// contains runs a ray-casting point-in-polygon test against the hex
// vertices, with the bounding box checked first.
func (l *Layout) contains(p Point) bool {
	if p.X < l.MinX || p.X > l.MaxX || p.Y < l.MinY || p.Y > l.MaxY {
		return false
	}

	inside := false
	j := 5
	for i := 0; i < 6; i++ {
		vi := l.Vertices[i]
		vj := l.Vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
