// Package render draws a session onto an ebiten image.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/herotiles/internal/domain/entity"
)

// Placeholder palette
var (
	colorLand      = color.RGBA{34, 30, 40, 255}
	colorGrass     = color.RGBA{40, 110, 50, 255}
	colorGrassTuft = color.RGBA{70, 160, 70, 255}
	colorItem      = color.RGBA{255, 215, 0, 255}
	colorHero      = color.RGBA{100, 160, 230, 255}
	colorEnemy     = color.RGBA{210, 80, 80, 255}
	colorEye       = color.RGBA{255, 255, 255, 255}
)

// Atlas maps image ids to images
type Atlas struct {
	images map[string]*ebiten.Image
	size   int
}

// NewAtlas generates placeholder images for every tile, item and
// character frame. frames is the number of movement frames per direction.
func NewAtlas(size, heroFrames, enemyFrames int) *Atlas {
	a := &Atlas{
		images: make(map[string]*ebiten.Image),
		size:   size,
	}

	a.images[entity.CellLand.ImageID()] = a.tile(colorLand, nil)
	a.images[entity.CellGrass.ImageID()] = a.tile(colorGrass, &colorGrassTuft)
	a.images[entity.ItemImageID] = a.item()

	a.addCharacter("hero", colorHero, heroFrames)
	a.addCharacter("enemy", colorEnemy, enemyFrames)
	return a
}

// Image returns the image for id, or nil if it is unknown
func (a *Atlas) Image(id string) *ebiten.Image {
	return a.images[id]
}

// Len returns the number of images
func (a *Atlas) Len() int {
	return len(a.images)
}

func (a *Atlas) tile(fill color.RGBA, tuft *color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(a.size, a.size)
	img.Fill(fill)
	if tuft != nil {
		s := float64(a.size)
		ebitenutil.DrawRect(img, s*0.2, s*0.5, 2, s*0.3, *tuft)
		ebitenutil.DrawRect(img, s*0.5, s*0.3, 2, s*0.4, *tuft)
		ebitenutil.DrawRect(img, s*0.75, s*0.55, 2, s*0.25, *tuft)
	}
	return img
}

func (a *Atlas) item() *ebiten.Image {
	img := ebiten.NewImage(a.size, a.size)
	s := float64(a.size)
	ebitenutil.DrawRect(img, s*0.3, s*0.3, s*0.4, s*0.4, colorItem)
	return img
}

// addCharacter adds <kind>_<dir>_<n> for every direction and frame.
// The eye marks the facing; odd frames bob one pixel.
func (a *Atlas) addCharacter(kind string, body color.RGBA, frames int) {
	if frames < entity.IdleFrames {
		frames = entity.IdleFrames
	}
	s := float64(a.size)

	for _, dir := range []entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight} {
		for n := 1; n <= frames; n++ {
			img := ebiten.NewImage(a.size, a.size)
			bob := float64(n % 2)
			ebitenutil.DrawRect(img, s*0.2, s*0.15+bob, s*0.6, s*0.75, body)

			ex, ey := eyeOffset(dir, s)
			ebitenutil.DrawRect(img, ex, ey+bob, 2, 2, colorEye)

			a.images[fmt.Sprintf("%s_%s_%d", kind, dir, n)] = img
		}
	}
}

func eyeOffset(dir entity.Direction, s float64) (x, y float64) {
	switch dir {
	case entity.DirUp:
		return s/2 - 1, s * 0.2
	case entity.DirLeft:
		return s * 0.25, s * 0.35
	case entity.DirRight:
		return s*0.75 - 2, s * 0.35
	default:
		return s/2 - 1, s * 0.45
	}
}
