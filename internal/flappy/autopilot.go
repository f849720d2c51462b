package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Autopilot is a simple controller that flaps whenever the bird is about to
// sink below the gap of the next pipe. It restarts after a crash.
type Autopilot struct {
	// Slack is how far above the gap bottom, in pixels, the bird's bottom may
	// get before a flap.
	Slack int
}

// Decide returns the input for the next frame.
func (a Autopilot) Decide(s Snapshot, screenH int) core.InputFrame {
	if s.Phase == PhaseGameOver {
		return core.InputOf(core.ActionRestart)
	}

	floor := screenH / 2
	for _, p := range s.Pipes {
		if p.Right() >= s.Bird.X {
			floor = p.GapY + p.GapHeight
			break
		}
	}

	next := s.Bird.Y + s.Bird.H + int(s.Bird.Velocity)
	if s.Bird.Velocity > 0 && next >= floor-a.Slack {
		return core.InputOf(core.ActionJump)
	}
	return core.NewInputFrame()
}
