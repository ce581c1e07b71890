package entity

// Direction is the facing of a character, used to pick its sprite row
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name used in sprite ids
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// FacingFor returns the facing for a movement intent.
// Horizontal input wins over vertical, so diagonal movement faces left or right.
// ok is false when there is no movement and the facing should be kept.
func FacingFor(dx, dy int) (dir Direction, ok bool) {
	switch {
	case dx > 0:
		return DirRight, true
	case dx < 0:
		return DirLeft, true
	case dy > 0:
		return DirDown, true
	case dy < 0:
		return DirUp, true
	default:
		return 0, false
	}
}

// Point is a position in world coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world coordinates
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether (x, y) lies inside r (right/bottom edges exclusive)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
