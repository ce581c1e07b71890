package playing

import (
	"log"

	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/application/system"
)

// InputSource supplies one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// ReplaySource plays recorded frames, then hands over to live input
type ReplaySource struct {
	replayer *replay.Replayer
	live     InputSource
	finished bool
}

// NewReplaySource creates a source reading r first and live afterwards
func NewReplaySource(r *replay.Replayer, live InputSource) *ReplaySource {
	return &ReplaySource{replayer: r, live: live}
}

// GetInput implements InputSource
func (s *ReplaySource) GetInput() system.InputState {
	if in, ok := s.replayer.GetInput(); ok {
		return in
	}
	if !s.finished {
		s.finished = true
		log.Printf("Replay finished (%d frames), switching to live input", s.replayer.TotalFrames())
	}
	return s.live.GetInput()
}

// Progress returns the current and total replay frame
func (s *ReplaySource) Progress() (frame, total int) {
	return s.replayer.CurrentFrame(), s.replayer.TotalFrames()
}

// Finished reports whether every recorded frame has been played
func (s *ReplaySource) Finished() bool {
	return s.finished
}
