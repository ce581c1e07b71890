package session

import (
	"log"

	"github.com/younwookim/herotiles/internal/application/state"
)

// TrackFor returns the music track played in s
func TrackFor(s state.GameState) string {
	switch s {
	case state.StatePlaying:
		return TrackLevel
	case state.StateGameOver:
		return TrackGameOver
	case state.StateVictory:
		return TrackVictory
	default:
		return TrackMenu
	}
}

// SetSoundEnabled turns music and effects on or off.
// Enabling resumes the track of the current state.
func (s *GameSession) SetSoundEnabled(enabled bool) {
	if s.SoundEnabled == enabled {
		return
	}
	s.SoundEnabled = enabled
	log.Printf("session %s: sound enabled=%v", shortID(s.ID), enabled)

	if !enabled {
		s.audio.StopTrack()
		return
	}
	s.selectTrack()
}

// ToggleSound flips the sound setting
func (s *GameSession) ToggleSound() {
	s.SetSoundEnabled(!s.SoundEnabled)
}

// Suspend pauses the music, e.g. while the window is unfocused
func (s *GameSession) Suspend() {
	if s.SoundEnabled {
		s.audio.PauseTrack()
	}
}

// Resume continues music paused by Suspend
func (s *GameSession) Resume() {
	if s.SoundEnabled {
		s.audio.UnpauseTrack()
	}
}

func (s *GameSession) selectTrack() {
	if !s.SoundEnabled {
		return
	}
	track := TrackFor(s.State)
	if !s.audio.IsTrackPlaying(track) {
		s.audio.PlayTrack(track)
	}
}

func (s *GameSession) playSound(name string) {
	if s.SoundEnabled {
		s.audio.PlaySound(name)
	}
}
