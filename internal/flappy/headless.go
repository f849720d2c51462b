package flappy

import (
	"context"
	"time"

	"github.com/vovakirdan/flappy/internal/core"
)

// WaitFunc blocks until the next frame and returns the elapsed real time.
type WaitFunc func(ctx context.Context) (time.Duration, error)

// RunStats summarizes a headless run.
type RunStats struct {
	Frames  int   // Frames simulated
	Crashes int   // Runs that ended in a crash
	Best    int   // Best score of any run
	Scores  []int // Score of every finished run, in order
	Flaps   int
	Last    int // Score of the run in progress when the loop stopped
}

// Simulate drives g with pilot for the given number of frames. With a nil
// wait each frame advances the clocks by exactly one frame interval, which
// makes the run reproducible for a given seed. The loop stops early with the
// context's error when ctx is cancelled.
func Simulate(ctx context.Context, g *Game, pilot Autopilot, frames int, wait WaitFunc) (RunStats, error) {
	var stats RunStats
	step := core.FrameInterval(g.cfg.Screen.FPS)
	screenH := g.cfg.Screen.Height

	for stats.Frames < frames {
		elapsed := step
		if wait != nil {
			var err error
			if elapsed, err = wait(ctx); err != nil {
				stats.Last = g.score
				return stats, err
			}
		} else if err := ctx.Err(); err != nil {
			stats.Last = g.score
			return stats, err
		}

		res := g.Step(pilot.Decide(g.Snapshot(), screenH), elapsed)
		stats.Frames++
		if res.Flapped {
			stats.Flaps++
		}
		if res.Crashed {
			stats.Crashes++
			stats.Scores = append(stats.Scores, res.State.Score)
			stats.Best = max(stats.Best, res.State.Score)
		}
	}

	stats.Last = g.score
	stats.Best = max(stats.Best, g.score)
	return stats, nil
}
