// Package playing provides the gameplay scene.
package playing

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/application/scene"
	"github.com/younwookim/herotiles/internal/application/session"
	"github.com/younwookim/herotiles/internal/application/state"
	"github.com/younwookim/herotiles/internal/infrastructure/render"
)

// Options configures recording and playback
type Options struct {
	// RecordPath enables input recording to this file
	RecordPath string
	// FrameDT is stored in recordings; it should match the game's dt
	FrameDT float64
}

// Playing adapts a GameSession to ebiten
type Playing struct {
	session  *session.GameSession
	input    InputSource
	renderer *render.Renderer

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Window focus, polled each frame
	isFocused func() bool
	focused   bool
}

// New creates a Playing scene.
// If opts.RecordPath is not empty, every frame's input is recorded.
func New(s *session.GameSession, atlas *render.Atlas, input InputSource, opts Options) *Playing {
	p := &Playing{
		session:        s,
		input:          input,
		renderer:       render.NewRenderer(atlas),
		recordFilename: opts.RecordPath,
		isFocused:      ebiten.IsFocused,
		focused:        true,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(s, opts.FrameDT)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, s.Seed())
	}

	// Save whenever a run ends so a crash later does not lose it
	prev := s.OnTransition
	s.OnTransition = func(from, to state.GameState, ev state.Event) {
		if prev != nil {
			prev(from, to, ev)
		}
		if to.IsFinished() {
			p.saveRecording()
		}
	}

	return p
}

// Update advances the session by one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.updateFocus()

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.session.Tick(dt, input)

	return nil, nil // nil = stay on this scene
}

// updateFocus pauses the music while the window is in the background
func (p *Playing) updateFocus() {
	focused := p.isFocused()
	if focused == p.focused {
		return
	}
	p.focused = focused
	if focused {
		p.session.Resume()
	} else {
		p.session.Suspend()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	}
}

// Draw renders the session (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	p.renderer.SetTarget(screen)
	p.session.Draw(p.renderer)

	if src, ok := p.input.(*ReplaySource); ok && !src.Finished() {
		frame, total := src.Progress()
		h := screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REPLAY %d/%d", frame, total), 4, h-18)
	}
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	log.Printf("Playing scene entered (session %s, seed %d)", p.session.ID, p.session.Seed())
}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Session returns the underlying session (for testing)
func (p *Playing) Session() *session.GameSession {
	return p.session
}
