package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

func TestSceneTiltClamp(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float64
	}{
		{0, 0},
		{-8.5, 25.5},
		{-12, 30},
		{4, -12},
		{20, -30},
	}

	g := newTestGame(t, config.DefaultFlappyConfig())
	for _, tc := range tests {
		g.bird.Velocity = tc.velocity
		if got := g.Scene().Tilt; got != tc.want {
			t.Errorf("tilt at velocity %g = %g, expected %g", tc.velocity, got, tc.want)
		}
	}
}

func TestSceneLayout(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: 200, Width: 70, GapY: 100, GapHeight: 150})

	sc := g.Scene()
	if sc.Width != 400 || sc.Height != 600 {
		t.Errorf("scene size = %dx%d", sc.Width, sc.Height)
	}
	if sc.Ground != core.NewRect(0, 560, 400, 40) {
		t.Errorf("ground = %+v", sc.Ground)
	}
	if sc.Bird != core.NewRect(80, 288, 34, 24) {
		t.Errorf("bird = %+v", sc.Bird)
	}
	if len(sc.Pipes) != 1 || sc.Pipes[0].Bottom.Y != 250 {
		t.Errorf("pipes = %+v", sc.Pipes)
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: 200, Width: 70, GapY: 100, GapHeight: 150})
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	// Ground covers y 560..600, rows 22 and 23 of 24.
	if scr.Get(0, 23) != GroundChar || scr.Get(79, 22) != GroundChar {
		t.Error("ground should fill the bottom rows")
	}
	// Bird covers x 80..114 and y 288..312: cells 16..22, rows 11..12.
	if cell := scr.GetCell(16, 11); cell.Rune != BirdChar || cell.Color != core.ColorBrightYellow {
		t.Errorf("bird cell = %+v", cell)
	}
	if scr.Get(19, 12) != '^' {
		t.Errorf("wing glyph = %q, expected '^'", scr.Get(19, 12))
	}
	// Pipe at x 200..270 maps to columns 40..53.
	if scr.Get(45, 10) != PipeChar {
		t.Error("bottom pipe segment should be drawn")
	}
	if scr.Get(45, 8) == PipeChar {
		t.Error("gap should be empty")
	}
	if scr.Get(39, 0) != '0' {
		t.Errorf("score should be centered on the top row, got %q", scr.Row(0))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	for g.Phase() == PhasePlaying {
		g.Step(core.NewInputFrame(), 0)
	}
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over message should be drawn")
	}
	if !strings.Contains(out, "Space to restart") {
		t.Error("restart hint should be drawn")
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	g.Step(core.InputOf(core.ActionPause), 0)
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause message should be drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(3, 2))
}

func TestIntDivRounding(t *testing.T) {
	tests := []struct {
		a, b        int
		floor, ceil int
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{6, 2, 3, 3},
		{0, 5, 0, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.floor {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.floor)
		}
		if got := ceilDiv(tc.a, tc.b); got != tc.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.ceil)
		}
	}
}

func TestAutopilot(t *testing.T) {
	pilot := Autopilot{Slack: 10}
	bird := Bird{X: 80, Y: 400, W: 34, H: 24, Velocity: 2}

	if in := pilot.Decide(Snapshot{Phase: PhaseGameOver}, 600); !in.Has(core.ActionRestart) {
		t.Error("autopilot should restart after a crash")
	}
	if in := pilot.Decide(Snapshot{Bird: bird}, 600); !in.Has(core.ActionJump) {
		t.Error("falling bird below the floor should flap")
	}

	bird.Velocity = -3
	if in := pilot.Decide(Snapshot{Bird: bird}, 600); !in.Empty() {
		t.Error("rising bird should not flap")
	}

	// The next pipe's gap bottom is the floor; passed pipes are ignored.
	bird.Y, bird.Velocity = 200, 1
	pipes := []Pipe{
		{X: -10, Width: 70, GapY: 50, GapHeight: 150},
		{X: 150, Width: 70, GapY: 150, GapHeight: 150},
	}
	if in := pilot.Decide(Snapshot{Bird: bird, Pipes: pipes}, 600); !in.Empty() {
		t.Error("bird well inside the next gap should not flap")
	}
}
