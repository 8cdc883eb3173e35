package core

// Viewport maps world coordinates (origin bottom-left, y up) onto terminal cells
// (origin top-left, y down). The play area starts at row OffsetY so the HUD can
// occupy the rows above it.
type Viewport struct {
	WorldWidth, WorldHeight float64
	Cols, Rows              int // Play area size in cells
	OffsetY                 int // First terminal row of the play area
}

// NewViewport builds a viewport for a terminal of the given size, reserving
// hudRows rows at the top
func NewViewport(worldWidth, worldHeight float64, termWidth, termHeight, hudRows int) Viewport {
	rows := termHeight - hudRows
	if rows < 1 {
		rows = 1
	}
	cols := termWidth
	if cols < 1 {
		cols = 1
	}
	return Viewport{
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
		Cols:        cols,
		Rows:        rows,
		OffsetY:     hudRows,
	}
}

// ToCell converts a world point to a terminal cell. Points on the far edges
// clamp to the last column/row.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := int(x / v.WorldWidth * float64(v.Cols))
	cy := int((v.WorldHeight - y) / v.WorldHeight * float64(v.Rows))
	if cx >= v.Cols {
		cx = v.Cols - 1
	}
	if cy >= v.Rows {
		cy = v.Rows - 1
	}
	return cx, cy + v.OffsetY
}

// ToWorld converts a terminal cell to the world point at its center
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) / float64(v.Cols) * v.WorldWidth
	y := v.WorldHeight - (float64(cy-v.OffsetY)+0.5)/float64(v.Rows)*v.WorldHeight
	return x, y
}

// AtEdge reports whether a cell lies on or outside the play area border
func (v Viewport) AtEdge(cx, cy int) bool {
	row := cy - v.OffsetY
	return cx <= 0 || cx >= v.Cols-1 || row <= 0 || row >= v.Rows-1
}

// Contains reports whether a cell lies inside the play area
func (v Viewport) Contains(cx, cy int) bool {
	row := cy - v.OffsetY
	return cx >= 0 && cx < v.Cols && row >= 0 && row < v.Rows
}
