// Package flappy implements the Flappy Bird simulation.
//
// The bird falls under gravity and flaps upward on input; pipes spawn at the
// right edge on a wall-clock timer, scroll left, score once when cleared, and
// are dropped once off screen. Any pipe hit, or touching the top or bottom of
// the screen, ends the run. The simulation is deterministic for a given seed,
// input sequence and sequence of frame durations.
package flappy

import (
	"time"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// BirdFrames is the number of wing positions in the flap animation.
const BirdFrames = 3

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game owns the whole simulation state.
type Game struct {
	cfg        config.FlappyConfig
	phase      Phase
	paused     bool
	bird       Bird
	pipes      *PipeManager
	score      int
	spawnTimer Accumulator
	anim       Animator
	tickCount  int
	seed       int64
}

// New creates a game with the given configuration. Call Reset before stepping.
func New(cfg config.FlappyConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{TickRate: cfg.Screen.FPS})
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset starts a fresh run with the runtime's seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	if g.pipes == nil {
		g.pipes = NewPipeManager(rc.Seed, g.cfg.Obstacles, g.cfg.Screen.Width, g.cfg.Screen.Height)
	} else {
		g.pipes.Reseed(rc.Seed)
	}
	g.anim = NewAnimator(BirdFrames, g.cfg.Render.AnimationInterval())
	g.spawnTimer = NewAccumulator(g.cfg.Obstacles.SpawnInterval())
	g.restart()
}

// restart puts the bird, pipes, score and spawn timer back to their initial
// values. The gap sequence and the animation carry on.
func (g *Game) restart() {
	g.phase = PhasePlaying
	g.paused = false
	g.bird = NewBird(g.cfg.Player, g.cfg.Screen.Height)
	g.pipes.Clear()
	g.score = 0
	g.spawnTimer.Reset()
	g.tickCount = 0
}

// Step advances the simulation by one frame. elapsed is the real time since
// the previous frame and drives the spawn and animation timers; physics
// advances exactly one fixed step regardless of elapsed.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	var res core.StepResult

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
			res.Restarted = true
		} else {
			g.anim.Advance(elapsed)
		}
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		res.State = g.State()
		return res
	}

	g.tickCount++
	g.anim.Advance(elapsed)

	if in.Has(core.ActionJump) {
		g.bird.Flap(g.cfg.Physics.FlapVelocity)
		res.Flapped = true
	}
	g.bird.Fall(g.cfg.Physics.Gravity)

	if g.spawnTimer.Advance(elapsed) {
		g.pipes.Spawn()
	}

	res.Scored = g.pipes.Advance(g.cfg.Physics.PipeSpeed, g.bird.X)
	g.score += res.Scored
	g.pipes.Prune(g.cfg.Obstacles.PruneThreshold)

	if g.bird.OutOfBounds(g.cfg.Screen.Height) || g.pipes.CheckCollision(g.bird.Rect()) {
		g.phase = PhaseGameOver
		res.Crashed = true
	}

	res.State = g.State()
	return res
}

// State returns the status front-ends need after a tick.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of simulated frames in the current run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Seed returns the seed of the current gap sequence.
func (g *Game) Seed() int64 {
	return g.seed
}

// Snapshot is a copy of the simulation state. It shares nothing with the game.
type Snapshot struct {
	Phase        Phase
	Paused       bool
	Bird         Bird
	Pipes        []Pipe
	Score        int
	SpawnElapsed time.Duration
}

// Snapshot copies the current simulation state.
func (g *Game) Snapshot() Snapshot {
	live := g.pipes.Pipes()
	pipes := make([]Pipe, len(live))
	copy(pipes, live)

	return Snapshot{
		Phase:        g.phase,
		Paused:       g.paused,
		Bird:         g.bird,
		Pipes:        pipes,
		Score:        g.score,
		SpawnElapsed: g.spawnTimer.Elapsed(),
	}
}
