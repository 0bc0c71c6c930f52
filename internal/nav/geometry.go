package nav

import (
	"math"

	"hexmarch/internal/hex"
)

// Point is a map-pixel position.
type Point struct {
	X, Y float64
}

// Geometry is the host rendering grid: it produces pixel geometry for an
// offset hex coordinate. ok=false means the host has no geometry for that
// coordinate (off-map); the hex is then omitted from the grid.
type Geometry interface {
	HexCenter(id hex.ID) (Point, bool)
	HexVertices(id hex.ID) ([6]Point, bool)
}

// RegularGrid is a standalone Geometry for a regular flat-top odd-q grid.
// Size is the circumradius (center to vertex) in pixels. Hexes from (0,0)
// to (Cols-1, Rows-1) exist; everything else is off-map.
type RegularGrid struct {
	Size       float64
	Cols, Rows int
	OriginX    float64
	OriginY    float64
}

func (g RegularGrid) inBounds(id hex.ID) bool {
	return id.Col >= 0 && id.Col < g.Cols && id.Row >= 0 && id.Row < g.Rows
}

// HexCenter returns the pixel center of a hex.
func (g RegularGrid) HexCenter(id hex.ID) (Point, bool) {
	if !g.inBounds(id) {
		return Point{}, false
	}
	x := g.OriginX + g.Size*(1.0+1.5*float64(id.Col))
	y := g.OriginY + g.Size*math.Sqrt(3)*(float64(id.Row)+0.5+0.5*float64(id.Col&1))
	return Point{X: x, Y: y}, true
}

// HexVertices returns the six corners clockwise starting at the east vertex
// (screen coordinates, y grows downward).
func (g RegularGrid) HexVertices(id hex.ID) ([6]Point, bool) {
	var out [6]Point
	c, ok := g.HexCenter(id)
	if !ok {
		return out, false
	}
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		out[i] = Point{
			X: c.X + g.Size*math.Cos(angle),
			Y: c.Y + g.Size*math.Sin(angle),
		}
	}
	return out, true
}
