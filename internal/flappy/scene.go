package flappy

import "github.com/vovakirdan/flappy/internal/core"

// PipeRects holds the two solid segments of a pipe in screen space.
type PipeRects struct {
	Top    core.Rect
	Bottom core.Rect
}

// Scene is everything a renderer needs to draw one frame, in logical pixels.
type Scene struct {
	Width, Height int
	Ground        core.Rect
	Pipes         []PipeRects
	Bird          core.Rect
	Tilt          float64 // Degrees, positive = nose up
	Frame         int     // Wing animation frame in [0, BirdFrames)
	Score         int
	GameOver      bool
	Paused        bool
}

// Scene describes the current frame. The tilt is cosmetic; the collision box
// stays axis-aligned.
func (g *Game) Scene() Scene {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	ground := g.cfg.Render.GroundHeight

	pipes := make([]PipeRects, 0, g.pipes.Len())
	for _, p := range g.pipes.Pipes() {
		pipes = append(pipes, PipeRects{
			Top:    p.TopRect(),
			Bottom: p.BottomRect(h),
		})
	}

	return Scene{
		Width:    w,
		Height:   h,
		Ground:   core.NewRect(0, h-ground, w, ground),
		Pipes:    pipes,
		Bird:     g.bird.Rect(),
		Tilt:     g.bird.Tilt(g.cfg.Render.TiltFactor, g.cfg.Render.MaxTilt),
		Frame:    g.anim.Frame(),
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}
