package flappy

import "time"

// Accumulator collects real elapsed time and fires once the total exceeds
// its interval. Firing resets the total to zero rather than carrying the
// remainder, so a long stall produces one event, not a burst.
type Accumulator struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewAccumulator creates an accumulator that fires after interval.
func NewAccumulator(interval time.Duration) Accumulator {
	return Accumulator{interval: interval}
}

// Advance adds d and reports whether the interval was exceeded.
func (a *Accumulator) Advance(d time.Duration) bool {
	if d > 0 {
		a.elapsed += d
	}
	if a.elapsed > a.interval {
		a.elapsed = 0
		return true
	}
	return false
}

// Elapsed returns the time accumulated since the last firing or reset.
func (a Accumulator) Elapsed() time.Duration {
	return a.elapsed
}

// Reset discards accumulated time.
func (a *Accumulator) Reset() {
	a.elapsed = 0
}

// Animator cycles a frame index on its own timer.
type Animator struct {
	timer  Accumulator
	frame  int
	frames int
}

// NewAnimator creates an animator over frames frames, advancing every interval.
func NewAnimator(frames int, interval time.Duration) Animator {
	return Animator{
		timer:  NewAccumulator(interval),
		frames: max(frames, 1),
	}
}

// Advance adds elapsed time and steps the frame when the interval is exceeded.
func (a *Animator) Advance(d time.Duration) {
	if a.timer.Advance(d) {
		a.frame = (a.frame + 1) % a.frames
	}
}

// Frame returns the current frame index in [0, frames).
func (a Animator) Frame() int {
	return a.frame
}
