package nav

// LineIterator steps through fine cells along a straight line using an
// integer Bresenham walk. Both rasterization and crossing detection use
// this same walk so a rasterized river is always hit by the sampling pass.
type LineIterator struct {
	currentX, currentY int
	targetX, targetY   int
	deltaX, deltaY     int
	stepX, stepY       int
	err                int
	xDominant          bool
	started            bool
}

// NewLineIterator creates a line iterator from (sx, sy) to (ex, ey) in
// fine-cell coordinates.
func NewLineIterator(sx, sy, ex, ey int) *LineIterator {
	it := &LineIterator{
		currentX: sx, currentY: sy,
		targetX: ex, targetY: ey,
	}

	it.deltaX = absInt(ex - sx)
	it.deltaY = absInt(ey - sy)

	if sx < ex {
		it.stepX = 1
	} else {
		it.stepX = -1
	}
	if sy < ey {
		it.stepY = 1
	} else {
		it.stepY = -1
	}

	it.xDominant = it.deltaX >= it.deltaY
	if it.xDominant {
		it.err = it.deltaX / 2
	} else {
		it.err = it.deltaY / 2
	}

	return it
}

// Next advances the iterator. The first call yields the start cell;
// it returns false once the target cell has been yielded.
func (it *LineIterator) Next() bool {
	if !it.started {
		it.started = true
		return true
	}

	if it.currentX == it.targetX && it.currentY == it.targetY {
		return false
	}

	if it.xDominant {
		it.currentX += it.stepX
		it.err += it.deltaY
		if it.err >= it.deltaX {
			it.currentY += it.stepY
			it.err -= it.deltaX
		}
	} else {
		it.currentY += it.stepY
		it.err += it.deltaX
		if it.err >= it.deltaY {
			it.currentX += it.stepX
			it.err -= it.deltaY
		}
	}

	return true
}

// X returns the current cell X.
func (it *LineIterator) X() int { return it.currentX }

// Y returns the current cell Y.
func (it *LineIterator) Y() int { return it.currentY }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
