package session

import (
	"image/color"

	"github.com/younwookim/herotiles/internal/domain/entity"
)

// Renderer draws the session. All coordinates are logical screen units.
type Renderer interface {
	Clear()
	// DrawSprite draws an image by id with its top-left corner at (x, y)
	DrawSprite(id string, x, y float64)
	DrawFilledRect(r entity.Rect, c color.RGBA)
	DrawLine(x1, y1, x2, y2 float64, c color.RGBA)
	// DrawText draws s at (x, y), or centered on (x, y) when centered is true
	DrawText(s string, x, y float64, size int, c color.RGBA, centered bool)
}

// Audio plays music tracks and one-shot sound effects
type Audio interface {
	PlayTrack(name string)
	StopTrack()
	PauseTrack()
	UnpauseTrack()
	IsTrackPlaying(name string) bool
	PlaySound(name string)
}

// Sound effect names
const (
	SoundClick   = "click"
	SoundHit     = "hit"
	SoundCollect = "collect"
)

// Music track names
const (
	TrackMenu     = "menu"
	TrackLevel    = "level"
	TrackGameOver = "gameover"
	TrackVictory  = "victory"
)

type nopAudio struct{}

func (nopAudio) PlayTrack(string)           {}
func (nopAudio) StopTrack()                 {}
func (nopAudio) PauseTrack()                {}
func (nopAudio) UnpauseTrack()              {}
func (nopAudio) IsTrackPlaying(string) bool { return false }
func (nopAudio) PlaySound(string)           {}
