package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Pipe is a pair of solid segments with a passable gap between them.
type Pipe struct {
	X         int  // Left edge
	Width     int  // Horizontal size of both segments
	GapY      int  // Top of the gap
	GapHeight int  // Height of the gap
	Passed    bool // Set once the bird has cleared the pipe
}

// Right returns the x-coordinate of the pipe's right edge.
func (p Pipe) Right() int {
	return p.X + p.Width
}

// TopRect returns the segment from the top of the screen to the gap.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.GapY)
}

// BottomRect returns the segment from the end of the gap to the bottom of the screen.
func (p Pipe) BottomRect(screenH int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, p.Width, screenH-bottomY)
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	cfg     config.Obstacles
	screenW int
	screenH int
}

// NewPipeManager creates a pipe manager whose gap positions come from seed.
func NewPipeManager(seed int64, cfg config.Obstacles, screenW, screenH int) *PipeManager {
	return &PipeManager{
		pipes:   make([]Pipe, 0, 8),
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
	}
}

// Reseed restarts the gap sequence from seed.
func (pm *PipeManager) Reseed(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all pipes. The gap sequence continues where it left off.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// Spawn adds a pipe at the right edge of the screen with a random gap that
// keeps the configured margins to both screen edges.
func (pm *PipeManager) Spawn() Pipe {
	minGapY := pm.cfg.TopMargin
	maxGapY := pm.screenH - pm.cfg.BottomMargin - pm.cfg.GapHeight

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pipe := Pipe{
		X:         pm.screenW,
		Width:     pm.cfg.PipeWidth,
		GapY:      gapY,
		GapHeight: pm.cfg.GapHeight,
	}
	pm.pipes = append(pm.pipes, pipe)
	return pipe
}

// Advance moves every pipe left by speed and marks pipes whose right edge is
// now left of birdX as passed. It returns how many pipes were passed this call;
// each pipe is counted at most once over its lifetime.
func (pm *PipeManager) Advance(speed, birdX int) int {
	passed := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X -= speed
		if !p.Passed && p.Right() < birdX {
			p.Passed = true
			passed++
		}
	}
	return passed
}

// Prune drops pipes whose right edge is left of threshold, keeping spawn order.
func (pm *PipeManager) Prune(threshold int) {
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.Right() >= threshold {
			kept = append(kept, p)
		}
	}
	clear(pm.pipes[len(kept):])
	pm.pipes = kept
}

// CheckCollision tests the rectangle against both segments of every pipe.
func (pm *PipeManager) CheckCollision(r core.Rect) bool {
	for _, p := range pm.pipes {
		if r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect(pm.screenH)) {
			return true
		}
	}
	return false
}

// Pipes returns the live pipes in spawn order. The slice must not be modified.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Len returns the number of live pipes.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}
