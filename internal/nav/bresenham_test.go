package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hexmarch/internal/hex"
)

func collectLine(sx, sy, ex, ey int) []hex.Cell {
	it := NewLineIterator(sx, sy, ex, ey)
	var cells []hex.Cell
	for it.Next() {
		cells = append(cells, hex.Cell{X: it.X(), Y: it.Y()})
	}
	return cells
}

func TestLineIteratorHorizontal(t *testing.T) {
	cells := collectLine(0, 0, 5, 0)

	assert.Equal(t, 6, len(cells), "should visit 6 cells (0..5)")
	assert.Equal(t, hex.Cell{X: 0, Y: 0}, cells[0])
	assert.Equal(t, hex.Cell{X: 5, Y: 0}, cells[5])
	for _, c := range cells {
		assert.Equal(t, 0, c.Y)
	}
}

func TestLineIteratorVertical(t *testing.T) {
	cells := collectLine(2, 1, 2, 5)

	assert.Equal(t, 5, len(cells))
	for _, c := range cells {
		assert.Equal(t, 2, c.X)
	}
	assert.Equal(t, hex.Cell{X: 2, Y: 5}, cells[len(cells)-1])
}

func TestLineIteratorDiagonal(t *testing.T) {
	cells := collectLine(0, 0, 4, 4)

	assert.Equal(t, hex.Cell{X: 0, Y: 0}, cells[0])
	assert.Equal(t, hex.Cell{X: 4, Y: 4}, cells[len(cells)-1])
	// A perfect diagonal steps both axes every iteration.
	assert.Equal(t, 5, len(cells))
}

func TestLineIteratorNegativeDirection(t *testing.T) {
	cells := collectLine(5, 5, 1, 2)

	assert.Equal(t, hex.Cell{X: 5, Y: 5}, cells[0])
	assert.Equal(t, hex.Cell{X: 1, Y: 2}, cells[len(cells)-1])
	for i := 1; i < len(cells); i++ {
		assert.LessOrEqual(t, cells[i].X, cells[i-1].X)
		assert.LessOrEqual(t, cells[i].Y, cells[i-1].Y)
	}
}

func TestLineIteratorSingleCell(t *testing.T) {
	cells := collectLine(3, 3, 3, 3)
	assert.Equal(t, []hex.Cell{{X: 3, Y: 3}}, cells)
}

func TestLineIteratorContiguous(t *testing.T) {
	// Every step moves at most one cell on each axis: no gaps a thin
	// obstacle line could slip through on the dominant axis.
	cells := collectLine(-3, 7, 11, -2)
	for i := 1; i < len(cells); i++ {
		dx := cells[i].X - cells[i-1].X
		dy := cells[i].Y - cells[i-1].Y
		assert.LessOrEqual(t, absInt(dx), 1)
		assert.LessOrEqual(t, absInt(dy), 1)
		assert.False(t, dx == 0 && dy == 0, "iterator must advance")
	}
}
