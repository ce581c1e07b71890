package sound

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

// Player implements session.Audio with ebiten's audio context
type Player struct {
	ctx     *audio.Context
	lib     Library
	volume  float64
	current *audio.Player
	name    string
	effects []*audio.Player
}

// New creates a player and renders the default score.
// ebiten allows one audio context per process, so an existing one is reused.
func New(cfg config.AudioConfig) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	} else if ctx.SampleRate() != cfg.SampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz, want %d", ctx.SampleRate(), cfg.SampleRate)
	}

	return &Player{
		ctx:    ctx,
		lib:    DefaultScore().Render(cfg.SampleRate, 1),
		volume: cfg.Volume,
	}, nil
}

// PlayTrack loops the named track, replacing the current one
func (p *Player) PlayTrack(name string) {
	pcm, ok := p.lib.Tracks[name]
	if !ok {
		log.Printf("sound: unknown track %q", name)
		return
	}
	p.StopTrack()

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := p.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("sound: failed to play track %q: %v", name, err)
		return
	}
	player.SetVolume(p.volume)
	player.Play()

	p.current = player
	p.name = name
}

// StopTrack stops and releases the current track
func (p *Player) StopTrack() {
	if p.current == nil {
		return
	}
	p.current.Pause()
	if err := p.current.Close(); err != nil {
		log.Printf("sound: failed to close track %q: %v", p.name, err)
	}
	p.current = nil
	p.name = ""
}

// PauseTrack pauses the current track
func (p *Player) PauseTrack() {
	if p.current != nil {
		p.current.Pause()
	}
}

// UnpauseTrack resumes the current track
func (p *Player) UnpauseTrack() {
	if p.current != nil {
		p.current.Play()
	}
}

// IsTrackPlaying reports whether name is the current, unpaused track
func (p *Player) IsTrackPlaying(name string) bool {
	return p.current != nil && p.name == name && p.current.IsPlaying()
}

// PlaySound plays a one-shot effect over the music
func (p *Player) PlaySound(name string) {
	pcm, ok := p.lib.Effects[name]
	if !ok {
		log.Printf("sound: unknown effect %q", name)
		return
	}

	p.pruneEffects()
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
	p.effects = append(p.effects, player)
}

// pruneEffects drops finished effect players
func (p *Player) pruneEffects() {
	live := p.effects[:0]
	for _, e := range p.effects {
		if e.IsPlaying() {
			live = append(live, e)
			continue
		}
		_ = e.Close()
	}
	p.effects = live
}

// Silent implements session.Audio and plays nothing
type Silent struct{}

func (Silent) PlayTrack(string)           {}
func (Silent) StopTrack()                 {}
func (Silent) PauseTrack()                {}
func (Silent) UnpauseTrack()              {}
func (Silent) IsTrackPlaying(string) bool { return false }
func (Silent) PlaySound(string)           {}
