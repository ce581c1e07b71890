package replay

import (
	"github.com/younwookim/herotiles/internal/application/session"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

// NewSession rebuilds the session a replay was recorded from.
// The recorded config wins over cfg when present.
func NewSession(cfg *config.GameConfig, data ReplayData, deps session.Deps) *session.GameSession {
	if data.Config != nil {
		cfg = data.Config
	}
	deps.Seed = data.Seed
	return session.New(cfg, deps)
}

// Run plays every recorded frame into a fresh session without a window
// and returns the session in its final state.
func Run(cfg *config.GameConfig, data ReplayData, deps session.Deps) *session.GameSession {
	s := NewSession(cfg, data, deps)
	r := NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		s.Tick(r.FrameDT(), in)
	}
	return s
}
