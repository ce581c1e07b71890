package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herotiles/internal/application/session"
	"github.com/younwookim/herotiles/internal/domain/entity"
)

var _ session.Renderer = (*Renderer)(nil)

func TestNewAtlas(t *testing.T) {
	a := NewAtlas(16, 3, 4)

	// 2 tiles, 1 item, 4 directions x (3 hero + 4 enemy) frames
	assert.Equal(t, 3+4*(3+4), a.Len())

	for _, id := range []string{"tile_land", "tile_grass", "item", "hero_down_1", "hero_left_3", "enemy_up_4"} {
		img := a.Image(id)
		require.NotNil(t, img, id)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		assert.Equal(t, 16, w, id)
		assert.Equal(t, 16, h, id)
	}

	assert.Nil(t, a.Image("hero_down_4"))
	assert.Nil(t, a.Image("tile_unknown"))
}

func TestNewAtlas_AtLeastIdleFrames(t *testing.T) {
	a := NewAtlas(8, 1, 0)

	assert.NotNil(t, a.Image("hero_right_2"), "idle cycle needs two frames")
	assert.NotNil(t, a.Image("enemy_right_2"))
}

func TestTextSize(t *testing.T) {
	w, h := TextSize("Health: 100")
	assert.Equal(t, 66.0, w)
	assert.Equal(t, 16.0, h)
}

func TestRenderer_SkipsUnknownSprites(t *testing.T) {
	r := NewRenderer(NewAtlas(16, 3, 3))
	r.SetTarget(ebiten.NewImage(64, 64))

	r.Clear()
	r.DrawSprite("hero_down_1", 10, 10)
	r.DrawSprite("dragon_up_1", 0, 0)
	r.DrawSprite("dragon_up_1", 5, 5)
	r.DrawFilledRect(entity.Rect{X: 1, Y: 1, W: 4, H: 4}, color.RGBA{255, 0, 0, 255})
	r.DrawLine(0, 0, 63, 63, color.RGBA{0, 255, 0, 255})
	r.DrawText("hi", 32, 32, 16, color.RGBA{255, 255, 255, 255}, true)

	assert.Equal(t, map[string]bool{"dragon_up_1": true}, r.missing)
}
