package hex

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// CellSize is the side length of one fine cell in map-pixel units.
// The fine grid is independent of hex boundaries; a hex spans many cells.
const CellSize = 8

// Cell addresses one cell of the fine overlay grid.
type Cell struct {
	X, Y int
}

// CellAt returns the fine cell containing a map-pixel position.
func CellAt(px, py float64) Cell {
	return Cell{X: floorDiv(px), Y: floorDiv(py)}
}

// Center returns the pixel position of the cell's center.
func (c Cell) Center() (float64, float64) {
	return float64(c.X)*CellSize + CellSize/2, float64(c.Y)*CellSize + CellSize/2
}

// Cardinals returns the four cardinal neighbor cells (E, W, S, N).
func (c Cell) Cardinals() [4]Cell {
	return [4]Cell{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// String returns the canonical "{x}.{y}" form.
func (c Cell) String() string {
	return fmt.Sprintf("%d.%d", c.X, c.Y)
}

// ParseCell parses the "{x}.{y}" form.
func ParseCell(s string) (Cell, error) {
	var c Cell
	if _, err := fmt.Sscanf(s, "%d.%d", &c.X, &c.Y); err != nil {
		return Cell{}, fmt.Errorf("parsing cell %q: %w", s, err)
	}
	return c, nil
}

// MarshalYAML serializes the cell as its string form.
func (c Cell) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML parses the cell from its string form.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCell(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func floorDiv(v float64) int {
	return int(math.Floor(v / CellSize))
}
