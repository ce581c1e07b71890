package session

import (
	"fmt"
	"image/color"

	"github.com/younwookim/herotiles/internal/application/state"
	"github.com/younwookim/herotiles/internal/domain/entity"
)

var (
	BackgroundColor = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	GridColor       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	TextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OverlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	ButtonColor     = color.RGBA{R: 60, G: 90, B: 160, A: 255}
)

const (
	hudTextSize    = 16
	titleTextSize  = 32
	buttonTextSize = 14
)

// Draw renders the current state. It never mutates the session.
func (s *GameSession) Draw(r Renderer) {
	r.Clear()

	w, h := s.screenSize()
	r.DrawFilledRect(entity.Rect{W: w, H: h}, BackgroundColor)

	s.drawTiles(r)
	s.drawGrid(r, w, h)
	s.drawActors(r)

	if s.State != state.StateMenu {
		r.DrawText(fmt.Sprintf("Health: %d", s.Hero.Health), 10, 10, hudTextSize, TextColor, false)
		r.DrawText(fmt.Sprintf("Items: %d/%d", s.ItemsCollected, s.TotalItems), 10, 30, hudTextSize, TextColor, false)
	}

	switch s.State {
	case state.StateMenu:
		s.drawOverlay(r, w, h, "Hero Tiles")
	case state.StateGameOver:
		s.drawOverlay(r, w, h, "Game Over")
	case state.StateVictory:
		s.drawOverlay(r, w, h, "Victory!")
	}

	s.drawButtons(r)
}

func (s *GameSession) drawTiles(r Renderer) {
	tm := s.TileMap
	ts := float64(tm.TileSize)
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			r.DrawSprite(tm.At(col, row).ImageID(), float64(col)*ts, float64(row)*ts)
		}
	}
}

func (s *GameSession) drawGrid(r Renderer, w, h float64) {
	ts := float64(s.TileMap.TileSize)
	for x := 0.0; x < w; x += ts {
		r.DrawLine(x, 0, x, h, GridColor)
	}
	for y := 0.0; y < h; y += ts {
		r.DrawLine(0, y, w, y, GridColor)
	}
}

// drawActors draws items under enemies under the hero.
// Positions are sprite centers; sprites are one tile in size.
func (s *GameSession) drawActors(r Renderer) {
	half := float64(s.TileMap.TileSize) / 2

	for _, e := range s.Enemies {
		if e.Item != nil && !e.Item.Collected {
			r.DrawSprite(entity.ItemImageID, e.Item.X-half, e.Item.Y-half)
		}
	}
	for _, e := range s.Enemies {
		r.DrawSprite(e.SpriteID(), e.X-half, e.Y-half)
	}
	r.DrawSprite(s.Hero.SpriteID(), s.Hero.X-half, s.Hero.Y-half)
}

func (s *GameSession) drawOverlay(r Renderer, w, h float64, title string) {
	r.DrawFilledRect(entity.Rect{W: w, H: h}, OverlayColor)
	r.DrawText(title, w/2, h/2-40, titleTextSize, TextColor, true)
}

func (s *GameSession) drawButtons(r Renderer) {
	for _, b := range s.Buttons() {
		r.DrawFilledRect(b.Rect, ButtonColor)
		c := b.Rect.Center()
		r.DrawText(b.Label, c.X, c.Y, buttonTextSize, TextColor, true)
	}
}
