package flappy

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/flappy/internal/config"
)

func TestSimulateReproducible(t *testing.T) {
	run := func() RunStats {
		g := newTestGame(t, config.DefaultFlappyConfig())
		stats, err := Simulate(context.Background(), g, Autopilot{Slack: 10}, 3000, nil)
		if err != nil {
			t.Fatalf("Simulate: %v", err)
		}
		return stats
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Frames != 3000 {
		t.Errorf("Frames = %d, expected 3000", a.Frames)
	}
	if len(a.Scores) != a.Crashes {
		t.Errorf("%d scores for %d crashes", len(a.Scores), a.Crashes)
	}
}

func TestSimulateCountsCrashes(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())

	// A pilot that never flaps in time: huge negative slack.
	stats, err := Simulate(context.Background(), g, Autopilot{Slack: -1000}, 200, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if stats.Crashes == 0 {
		t.Error("falling bird should crash")
	}
	if stats.Flaps != 0 {
		t.Errorf("Flaps = %d, expected 0", stats.Flaps)
	}
}

func TestSimulateUsesWait(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	calls := 0
	wait := func(context.Context) (time.Duration, error) {
		calls++
		return 0, nil
	}

	if _, err := Simulate(context.Background(), g, Autopilot{}, 10, wait); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if calls != 10 {
		t.Errorf("wait called %d times, expected 10", calls)
	}
	if g.pipes.Len() != 0 {
		t.Error("zero elapsed time should never spawn pipes")
	}
}

func TestSimulateCancelled(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := Simulate(ctx, g, Autopilot{}, 100, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if stats.Frames != 0 {
		t.Errorf("Frames = %d, expected 0", stats.Frames)
	}
}
