package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/herotiles/internal/domain/entity"
)

// Glyph size of the ebitenutil debug font
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Renderer implements session.Renderer on an ebiten image.
// The debug font has one size, so text size only affects centering.
type Renderer struct {
	target  *ebiten.Image
	atlas   *Atlas
	missing map[string]bool
}

// NewRenderer creates a renderer drawing atlas images
func NewRenderer(atlas *Atlas) *Renderer {
	return &Renderer{
		atlas:   atlas,
		missing: make(map[string]bool),
	}
}

// SetTarget sets the image drawn on by subsequent calls
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Clear clears the target
func (r *Renderer) Clear() {
	r.target.Clear()
}

// DrawSprite draws an atlas image. Unknown ids are logged once and skipped.
func (r *Renderer) DrawSprite(id string, x, y float64) {
	img := r.atlas.Image(id)
	if img == nil {
		if !r.missing[id] {
			r.missing[id] = true
			log.Printf("render: no image for %q", id)
		}
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.target.DrawImage(img, op)
}

// DrawFilledRect fills a rectangle
func (r *Renderer) DrawFilledRect(rect entity.Rect, c color.RGBA) {
	ebitenutil.DrawRect(r.target, rect.X, rect.Y, rect.W, rect.H, c)
}

// DrawLine draws a one-pixel line
func (r *Renderer) DrawLine(x1, y1, x2, y2 float64, c color.RGBA) {
	ebitenutil.DrawLine(r.target, x1, y1, x2, y2, c)
}

// DrawText prints s with the debug font. The debug font is always white.
func (r *Renderer) DrawText(s string, x, y float64, _ int, _ color.RGBA, centered bool) {
	if centered {
		w, h := TextSize(s)
		x -= w / 2
		y -= h / 2
	}
	ebitenutil.DebugPrintAt(r.target, s, int(x), int(y))
}

// TextSize returns the size of s in the debug font
func TextSize(s string) (w, h float64) {
	return float64(len(s) * glyphWidth), glyphHeight
}
