package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Glyph is how one sprite looks in the terminal
type Glyph struct {
	Text string
	FG   tcell.Color
	BG   tcell.Color
}

// GlyphSet maps sprite id prefixes to glyphs
type GlyphSet map[string]Glyph

// EmojiGlyphs draws every sprite as a double-width emoji
var EmojiGlyphs = GlyphSet{
	"tile_land":  {Text: " ", BG: tcell.NewRGBColor(34, 30, 40)},
	"tile_grass": {Text: "🌿", BG: tcell.NewRGBColor(20, 60, 25)},
	"item":       {Text: "💎", BG: tcell.ColorDefault},
	"hero":       {Text: "🧙", BG: tcell.ColorDefault},
	"enemy":      {Text: "👹", BG: tcell.ColorDefault},
}

// ASCIIGlyphs works on terminals without emoji fonts
var ASCIIGlyphs = GlyphSet{
	"tile_land":  {Text: " ", BG: tcell.NewRGBColor(34, 30, 40)},
	"tile_grass": {Text: "\"\"", FG: tcell.ColorGreen, BG: tcell.NewRGBColor(20, 60, 25)},
	"item":       {Text: "<>", FG: tcell.ColorYellow},
	"hero":       {Text: "@", FG: tcell.ColorAqua},
	"enemy":      {Text: "&", FG: tcell.ColorRed},
}

// Lookup returns the glyph for a sprite id. Character ids such as
// "hero_left_2" match on their kind prefix.
func (g GlyphSet) Lookup(id string) (Glyph, bool) {
	if glyph, ok := g[id]; ok {
		return glyph, true
	}
	kind, _, found := strings.Cut(id, "_")
	if !found {
		return Glyph{}, false
	}
	glyph, ok := g[kind]
	return glyph, ok
}
