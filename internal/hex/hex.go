// Package hex provides odd-q offset hex coordinates and the fine-cell
// overlay grid used for sub-hex obstruction tracking.
package hex

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ID addresses one hex of the world grid under the odd-q offset layout
// (flat-top hexes, odd columns shifted half a hex down).
// Serialized as "{col}.{row}".
type ID struct {
	Col, Row int
}

// String returns the canonical "{col}.{row}" form.
func (id ID) String() string {
	return fmt.Sprintf("%d.%d", id.Col, id.Row)
}

// ParseID parses the "{col}.{row}" form.
func ParseID(s string) (ID, error) {
	var id ID
	if _, err := fmt.Sscanf(s, "%d.%d", &id.Col, &id.Row); err != nil {
		return ID{}, fmt.Errorf("parsing hex id %q: %w", s, err)
	}
	return id, nil
}

// MarshalYAML serializes the id as its string form.
func (id ID) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML parses the id from its string form.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Neighbor offset tables for odd-q layout. Column parity selects the table.
// Order: E, NE, N, NW, W, S (clockwise from east, matching vertex order).
var (
	evenColOffsets = [6][2]int{
		{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, 1},
	}
	oddColOffsets = [6][2]int{
		{1, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
	}
)

// Neighbors returns the six adjacent hex ids in a fixed deterministic order.
// Callers filter against the set of hexes that actually exist on the map.
func (id ID) Neighbors() [6]ID {
	offsets := &evenColOffsets
	if colParity(id.Col) == 1 {
		offsets = &oddColOffsets
	}
	var out [6]ID
	for i, off := range offsets {
		out[i] = ID{Col: id.Col + off[0], Row: id.Row + off[1]}
	}
	return out
}

// colParity returns the mathematical parity of a column (0 or 1), correct
// for negative columns where Go's % would yield -1.
func colParity(col int) int {
	return ((col % 2) + 2) % 2
}

// cube converts to cube coordinates for distance math.
func (id ID) cube() (x, y, z int) {
	x = id.Col
	z = id.Row - (id.Col-colParity(id.Col))/2
	y = -x - z
	return
}

// Distance returns the hex-grid distance between two ids.
func Distance(a, b ID) int {
	ax, ay, az := a.cube()
	bx, by, bz := b.cube()
	d := absInt(ax - bx)
	if dy := absInt(ay - by); dy > d {
		d = dy
	}
	if dz := absInt(az - bz); dz > d {
		d = dz
	}
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
