package replay

import (
	"github.com/younwookim/herotiles/internal/application/system"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

// Version is the current replay file format
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	MX int  `json:"mx,omitempty"` // MouseX
	MY int  `json:"my,omitempty"` // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
	A  bool `json:"a,omitempty"`  // Activate
	S  bool `json:"s,omitempty"`  // ToggleSound
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string  `json:"version"`
	Seed      int64   `json:"seed"`
	SessionID string  `json:"sessionId,omitempty"`
	StartTime string  `json:"startTime"`
	FrameDT   float64 `json:"frameDt"`
	// Config is the configuration the run was recorded with. nil replays
	// against whatever configuration the caller supplies.
	Config *config.GameConfig `json:"config,omitempty"`
	Frames []FrameInput       `json:"frames"`
}

func toFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		MX: in.MouseX,
		MY: in.MouseY,
		MC: in.Click,
		A:  in.Activate,
		S:  in.ToggleSound,
	}
}

// InputState converts the recorded frame back into live input
func (fi FrameInput) InputState() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		Up:          fi.U,
		Down:        fi.D,
		Click:       fi.MC,
		MouseX:      fi.MX,
		MouseY:      fi.MY,
		Activate:    fi.A,
		ToggleSound: fi.S,
	}
}
