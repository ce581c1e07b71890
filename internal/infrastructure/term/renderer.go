package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/younwookim/herotiles/internal/domain/entity"
)

// Renderer implements session.Renderer on a tcell screen
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	glyphs GlyphSet
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, view Viewport, glyphs GlyphSet) *Renderer {
	return &Renderer{screen: screen, view: view, glyphs: glyphs}
}

// Clear clears the screen
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// DrawSprite draws the glyph of id in the tile whose top-left corner is (x, y).
// Sprites without a glyph are skipped.
func (r *Renderer) DrawSprite(id string, x, y float64) {
	g, ok := r.glyphs.Lookup(id)
	if !ok {
		return
	}

	// Sprites are anchored at their top-left; pick the cell under the center
	half := float64(r.view.TileSize) / 2
	col, row := r.view.ToCell(x+half, y+half)
	col -= col % CellsPerTile

	style := tcell.StyleDefault.Foreground(g.FG).Background(g.BG)
	if g.BG == tcell.ColorDefault {
		// Keep the tile background under characters and items
		_, _, under, _ := r.screen.GetContent(col, row)
		_, bg, _ := under.Decompose()
		style = style.Background(bg)
	}

	r.putText(col, row, padTo(g.Text, CellsPerTile), style)
}

// DrawFilledRect paints the background of every cell in rect.
// Translucent colors dim the existing content instead.
func (r *Renderer) DrawFilledRect(rect entity.Rect, c color.RGBA) {
	c1, r1 := r.view.ToCell(rect.X, rect.Y)
	c2, r2 := r.view.Size(rect.Right(), rect.Bottom())

	for row := r1; row < r2; row++ {
		for col := c1; col < c2; col++ {
			mainc, combc, style, _ := r.screen.GetContent(col, row)
			if c.A < 255 {
				r.screen.SetContent(col, row, mainc, combc, style.Dim(true))
				continue
			}
			r.screen.SetContent(col, row, ' ', nil, style.Background(toColor(c)))
		}
	}
}

// DrawLine is a no-op: grid lines fall between terminal cells
func (r *Renderer) DrawLine(_, _, _, _ float64, _ color.RGBA) {}

// DrawText writes s starting at, or centered on, the cell containing (x, y).
// The size is ignored.
func (r *Renderer) DrawText(s string, x, y float64, _ int, c color.RGBA, centered bool) {
	col, row := r.view.ToCell(x, y)
	if centered {
		col -= runewidth.StringWidth(s) / 2
	}

	_, _, under, _ := r.screen.GetContent(col, row)
	_, bg, _ := under.Decompose()
	r.putText(col, row, s, tcell.StyleDefault.Foreground(toColor(c)).Background(bg))
}

// putText writes s cell by cell, advancing by each rune's display width
func (r *Renderer) putText(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w == 2 {
			// Fill the second column to avoid rendering artifacts
			r.screen.SetContent(col+1, row, ' ', nil, style)
		}
		col += w
	}
}

// padTo pads s with spaces to width display columns
func padTo(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + runewidth.FillRight("", width-w)
	}
	return s
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
