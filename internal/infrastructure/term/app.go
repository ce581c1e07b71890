package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/application/session"
)

// App drives a session from a tcell screen.
// The caller owns the screen and must Init it before Run and Fini it after.
type App struct {
	screen   tcell.Screen
	session  *session.GameSession
	renderer *Renderer
	input    *Input
	fps      int

	// Recorder, when set, records every frame's input
	Recorder *replay.Recorder
}

// NewApp creates an app running s at fps frames per second
func NewApp(screen tcell.Screen, s *session.GameSession, glyphs GlyphSet, fps int) *App {
	view := Viewport{TileSize: s.TileMap.TileSize}
	return &App{
		screen:   screen,
		session:  s,
		renderer: NewRenderer(screen, view, glyphs),
		input:    NewInput(view, DefaultHold),
		fps:      fps,
	}
}

// Run polls events on a separate goroutine and ticks the session on this one,
// so the session is only ever touched by the caller's goroutine.
// It returns when the player quits, the screen closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	dt := 1.0 / float64(a.fps)
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				a.screen.Sync()
				continue
			}
			if a.input.HandleEvent(ev, time.Now()) {
				log.Printf("term: quit requested")
				return nil
			}
		case now := <-ticker.C:
			in := a.input.Snapshot(now)
			if a.Recorder != nil {
				a.Recorder.RecordFrame(in)
			}
			a.session.Tick(dt, in)
			a.draw()
		}
	}
}

func (a *App) draw() {
	a.session.Draw(a.renderer)
	a.screen.Show()
}
