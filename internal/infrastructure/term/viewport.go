// Package term runs the game in a terminal with tcell.
package term

import "math"

// CellsPerTile is the number of terminal columns per map tile.
// Terminal cells are about twice as tall as wide.
const CellsPerTile = 2

// Viewport converts between logical screen units and terminal cells.
// One map tile is one row and CellsPerTile columns.
type Viewport struct {
	TileSize int
}

// ToCell returns the cell containing the logical point (x, y)
func (v Viewport) ToCell(x, y float64) (col, row int) {
	ts := float64(v.TileSize)
	return int(math.Floor(x * CellsPerTile / ts)), int(math.Floor(y / ts))
}

// ToLogical returns the logical point at the center of a cell
func (v Viewport) ToLogical(col, row int) (x, y float64) {
	ts := float64(v.TileSize)
	return (float64(col) + 0.5) * ts / CellsPerTile, (float64(row) + 0.5) * ts
}

// Size returns the number of cells needed for a logical area
func (v Viewport) Size(w, h float64) (cols, rows int) {
	ts := float64(v.TileSize)
	return int(math.Ceil(w * CellsPerTile / ts)), int(math.Ceil(h / ts))
}
