package entity

import (
	"math"
	"math/rand"
)

// Cell is the type of a single map cell
type Cell uint8

const (
	CellLand  Cell = iota // walkable
	CellGrass             // blocked
)

// Walkable reports whether characters may stand on the cell
func (c Cell) Walkable() bool {
	return c == CellLand
}

// ImageID returns the tile image id for the cell
func (c Cell) ImageID() string {
	switch c {
	case CellLand:
		return "tile_land"
	case CellGrass:
		return "tile_grass"
	default:
		return "tile_unknown"
	}
}

// TileMap is the fixed-size grid of cells the characters walk on.
// Its dimensions never change after construction.
type TileMap struct {
	Rows     int
	Cols     int
	TileSize int
	Cells    [][]Cell
}

// GenerateOptions controls procedural map generation
type GenerateOptions struct {
	Rows             int
	Cols             int
	TileSize         int
	GrassProbability float64
	// CarveCross clears a two-tile-wide corridor through the middle row and column
	CarveCross bool
}

// NewTileMap creates a map with every cell set to land
func NewTileMap(rows, cols, tileSize int) *TileMap {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &TileMap{
		Rows:     rows,
		Cols:     cols,
		TileSize: tileSize,
		Cells:    cells,
	}
}

// GenerateTileMap fills the interior with grass at the given probability and
// blocks every border cell. rng is the only source of randomness, so the same
// seed always yields the same map.
func GenerateTileMap(opts GenerateOptions, rng *rand.Rand) *TileMap {
	m := NewTileMap(opts.Rows, opts.Cols, opts.TileSize)

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.isBorder(c, r) {
				m.Cells[r][c] = CellGrass
				continue
			}
			if rng.Float64() < opts.GrassProbability {
				m.Cells[r][c] = CellGrass
			}
		}
	}

	if opts.CarveCross {
		m.carveCross()
	}

	return m
}

func (m *TileMap) isBorder(col, row int) bool {
	return row == 0 || row == m.Rows-1 || col == 0 || col == m.Cols-1
}

// carveCross opens rows/cols n/2-1 and n/2, leaving the border intact
func (m *TileMap) carveCross() {
	midRow := m.Rows / 2
	midCol := m.Cols / 2

	for r := 1; r < m.Rows-1; r++ {
		for c := 1; c < m.Cols-1; c++ {
			onRow := r == midRow || r == midRow-1
			onCol := c == midCol || c == midCol-1
			if onRow || onCol {
				m.Cells[r][c] = CellLand
			}
		}
	}
}

// InBounds reports whether (col, row) is inside the grid
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// At returns the cell at (col, row). Out-of-bounds lookups return grass.
func (m *TileMap) At(col, row int) Cell {
	if !m.InBounds(col, row) {
		return CellGrass
	}
	return m.Cells[row][col]
}

// Set replaces the cell at (col, row); out-of-bounds writes are ignored
func (m *TileMap) Set(col, row int, c Cell) {
	if !m.InBounds(col, row) {
		return
	}
	m.Cells[row][col] = c
}

// WorldToTile converts world coordinates to tile coordinates by floor division
func (m *TileMap) WorldToTile(x, y float64) (col, row int) {
	ts := float64(m.TileSize)
	return int(math.Floor(x / ts)), int(math.Floor(y / ts))
}

// IsWalkable returns true when (col, row) is in bounds and land
func (m *TileMap) IsWalkable(col, row int) bool {
	if !m.InBounds(col, row) {
		return false
	}
	return m.Cells[row][col].Walkable()
}

// IsWalkableAt checks the tile under world coordinates
func (m *TileMap) IsWalkableAt(x, y float64) bool {
	return m.IsWalkable(m.WorldToTile(x, y))
}

// ClearRect turns every interior tile touched by r into land.
// Border tiles stay blocked.
func (m *TileMap) ClearRect(r Rect) {
	c1, r1 := m.WorldToTile(r.X, r.Y)
	c2, r2 := m.WorldToTile(r.Right(), r.Bottom())

	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			if !m.InBounds(col, row) || m.isBorder(col, row) {
				continue
			}
			m.Cells[row][col] = CellLand
		}
	}
}

// Width returns the map width in world units
func (m *TileMap) Width() float64 {
	return float64(m.Cols * m.TileSize)
}

// Height returns the map height in world units
func (m *TileMap) Height() float64 {
	return float64(m.Rows * m.TileSize)
}

// Center returns the world-space center of the map
func (m *TileMap) Center() Point {
	return Point{X: m.Width() / 2, Y: m.Height() / 2}
}

// BlockedCount returns the number of grass cells
func (m *TileMap) BlockedCount() int {
	n := 0
	for _, row := range m.Cells {
		for _, c := range row {
			if !c.Walkable() {
				n++
			}
		}
	}
	return n
}
