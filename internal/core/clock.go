package core

import (
	"context"
	"time"
)

// Clock provides monotonic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading, so
// differences between its values are not affected by clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameTimer measures the real time elapsed between consecutive frames.
type FrameTimer struct {
	clock   Clock
	last    time.Time
	started bool
}

// NewFrameTimer creates a frame timer reading from clock.
func NewFrameTimer(clock Clock) *FrameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameTimer{clock: clock}
}

// Tick returns the time elapsed since the previous Tick.
// The first call returns zero.
func (t *FrameTimer) Tick() time.Duration {
	return t.TickAt(t.clock.Now())
}

// TickAt is Tick with an externally supplied timestamp, for front-ends whose
// event loop already carries one.
func (t *FrameTimer) TickAt(now time.Time) time.Duration {
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	elapsed := now.Sub(t.last)
	t.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Reset forgets the previous frame; the next Tick returns zero.
func (t *FrameTimer) Reset() {
	t.started = false
}

// FrameInterval returns the duration of one frame at the given rate.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Pacer blocks until the next frame boundary of a fixed target frame rate.
type Pacer struct {
	ticker *time.Ticker
	timer  *FrameTimer
}

// NewPacer starts a pacer at fps frames per second.
func NewPacer(clock Clock, fps int) *Pacer {
	p := &Pacer{
		ticker: time.NewTicker(FrameInterval(fps)),
		timer:  NewFrameTimer(clock),
	}
	p.timer.Tick()
	return p
}

// Wait blocks until the next frame boundary and returns the time elapsed
// since the previous call to Wait (or since the pacer started).
func (p *Pacer) Wait(ctx context.Context) (time.Duration, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-p.ticker.C:
		return p.timer.Tick(), nil
	}
}

// Stop releases the pacer's ticker.
func (p *Pacer) Stop() {
	p.ticker.Stop()
}
