package entity

// DefaultEnemySpeed is slower than the hero so a careful player can slip past
const DefaultEnemySpeed = 1.0

// PatrolCorners is the number of corners in a patrol route
const PatrolCorners = 4

// Patrol walks the corners of a rectangle in a fixed order:
// top-right, bottom-right, bottom-left, top-left.
// It is the Controller of an Enemy.
type Patrol struct {
	Area    Rect
	Targets [PatrolCorners]Point
	Index   int
}

// NewPatrol creates the route around area, heading for the top-right corner first
func NewPatrol(area Rect) *Patrol {
	return &Patrol{
		Area: area,
		Targets: [PatrolCorners]Point{
			{X: area.Right(), Y: area.Y},
			{X: area.Right(), Y: area.Bottom()},
			{X: area.X, Y: area.Bottom()},
			{X: area.X, Y: area.Y},
		},
	}
}

// Target returns the corner currently being walked to
func (p *Patrol) Target() Point {
	return p.Targets[p.Index]
}

// Intent implements Controller. The route only advances when the character
// sits exactly on the target; each axis then steps toward the target
// independently, so movement is diagonal until one axis lines up.
func (p *Patrol) Intent(c *Character) (dx, dy int) {
	t := p.Target()
	if c.DistanceTo(t.X, t.Y) == 0 {
		p.Index = (p.Index + 1) % PatrolCorners
		t = p.Target()
	}
	return sign(t.X - c.X), sign(t.Y - c.Y)
}

// Item is the collectible an enemy guards. Collected items are never
// removed, only flagged.
type Item struct {
	X, Y      float64
	Collected bool
}

// ItemImageID is the sprite id for items
const ItemImageID = "item"

// Collect flags the item as collected. It returns true only the first time.
func (it *Item) Collect() bool {
	if it.Collected {
		return false
	}
	it.Collected = true
	return true
}

// Enemy patrols a rectangle and guards one item at its center
type Enemy struct {
	Character
	Patrol *Patrol
	Item   *Item
}

// NewEnemy creates an enemy at the top-left corner of area.
// Enemies do not probe the tile map; patrol areas are expected to be clear.
func NewEnemy(area Rect, opts CharacterOptions) *Enemy {
	patrol := NewPatrol(area)
	center := area.Center()

	e := &Enemy{
		Character: NewCharacter("enemy", area.X, area.Y, opts),
		Patrol:    patrol,
		Item:      &Item{X: center.X, Y: center.Y},
	}
	e.Controller = patrol
	return e
}
