// Package sound plays synthesized music and effects through ebiten's audio package.
package sound

import (
	"encoding/binary"
	"math"
)

// Note is one tone of a melody. Freq 0 is a rest.
type Note struct {
	Freq float64 // Hz
	Dur  float64 // seconds
}

// Note frequencies (Hz)
const (
	C4 = 261.63
	D4 = 293.66
	E4 = 329.63
	F4 = 349.23
	G4 = 392.00
	A4 = 440.00
	B4 = 493.88
	C5 = 523.25
	E5 = 659.25
	G5 = 783.99
)

const bytesPerFrame = 4 // 16-bit stereo

// envelope ramps the first and last samples of a note to avoid clicks
const envelopeSeconds = 0.005

// Tone renders a square-ish wave as 16-bit little-endian stereo PCM.
// volume is clamped to [0, 1].
func Tone(freq, dur float64, sampleRate int, volume float64) []byte {
	n := int(dur * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	buf := make([]byte, n*bytesPerFrame)
	ramp := int(envelopeSeconds * float64(sampleRate))
	for i := 0; i < n; i++ {
		var v float64
		if freq > 0 {
			// Soft square: a sine pushed through tanh
			v = math.Tanh(3*math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))) * volume
			if ramp > 0 {
				v *= math.Min(1, math.Min(float64(i)/float64(ramp), float64(n-1-i)/float64(ramp)))
			}
		}
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(s))
	}
	return buf
}

// Melody renders notes back to back
func Melody(notes []Note, sampleRate int, volume float64) []byte {
	var buf []byte
	for _, n := range notes {
		buf = append(buf, Tone(n.Freq, n.Dur, sampleRate, volume)...)
	}
	return buf
}

// Library holds the rendered PCM of every track and effect
type Library struct {
	Tracks  map[string][]byte
	Effects map[string][]byte
}

// Score lists the notes of every track and effect by name
type Score struct {
	Tracks  map[string][]Note
	Effects map[string][]Note
}

// DefaultScore returns the built-in tunes, keyed by the session's track and sound names
func DefaultScore() Score {
	const q = 0.18 // quarter note
	return Score{
		Tracks: map[string][]Note{
			"menu":     {{C4, q}, {E4, q}, {G4, q}, {E4, q}, {F4, q}, {A4, q}, {G4, 2 * q}, {0, q}},
			"level":    {{E4, q / 2}, {G4, q / 2}, {A4, q}, {G4, q / 2}, {E4, q / 2}, {D4, q}, {C4, q}, {D4, q}, {0, q / 2}},
			"gameover": {{G4, q}, {F4, q}, {E4, q}, {D4, q}, {C4, 3 * q}, {0, 2 * q}},
			"victory":  {{C5, q / 2}, {E5, q / 2}, {G5, q}, {E5, q / 2}, {G5, 2 * q}, {0, 2 * q}},
		},
		Effects: map[string][]Note{
			"click":   {{A4, 0.03}},
			"hit":     {{B4, 0.06}, {F4, 0.08}, {C4, 0.12}},
			"collect": {{C5, 0.05}, {G5, 0.08}},
		},
	}
}

// Render renders every tune of the score
func (s Score) Render(sampleRate int, volume float64) Library {
	lib := Library{
		Tracks:  make(map[string][]byte, len(s.Tracks)),
		Effects: make(map[string][]byte, len(s.Effects)),
	}
	for name, notes := range s.Tracks {
		lib.Tracks[name] = Melody(notes, sampleRate, volume)
	}
	for name, notes := range s.Effects {
		lib.Effects[name] = Melody(notes, sampleRate, volume)
	}
	return lib
}
