package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

func newTestPipes(seed int64) *PipeManager {
	cfg := config.DefaultFlappyConfig()
	return NewPipeManager(seed, cfg.Obstacles, cfg.Screen.Width, cfg.Screen.Height)
}

func TestSpawnGapRange(t *testing.T) {
	pm := newTestPipes(99)

	seen := make(map[int]bool)
	for range 5000 {
		p := pm.Spawn()
		if p.GapY < 80 || p.GapY > 370 {
			t.Fatalf("gap top %d outside [80, 370]", p.GapY)
		}
		if p.X != 400 {
			t.Fatalf("pipe should spawn at the right edge, got X=%d", p.X)
		}
		seen[p.GapY] = true
		pm.Clear()
	}

	// Both bounds are inclusive.
	if !seen[80] || !seen[370] {
		t.Errorf("expected both extremes to occur, saw 80=%v 370=%v", seen[80], seen[370])
	}
}

func TestSpawnDegenerateRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	cfg.GapHeight = 500
	pm := NewPipeManager(1, cfg, 400, 600)

	if p := pm.Spawn(); p.GapY != cfg.TopMargin {
		t.Errorf("gap should sit at the top margin when no room is left, got %d", p.GapY)
	}
}

func TestPipeLifetime(t *testing.T) {
	pm := newTestPipes(1)
	pm.Spawn()

	for frame := 1; frame <= 174; frame++ {
		pm.Advance(3, 80)
		pm.Prune(-50)

		switch frame {
		case 150:
			if pm.Len() != 1 || pm.Pipes()[0].X != -50 {
				t.Fatalf("frame 150: expected live pipe at x=-50, got %+v", pm.Pipes())
			}
		case 173:
			if pm.Len() != 1 {
				t.Fatalf("frame 173: right edge %d is still on the threshold side, pipe should be kept", -119+70)
			}
		case 174:
			if pm.Len() != 0 {
				t.Fatalf("frame 174: pipe should be pruned, got %+v", pm.Pipes())
			}
		}
	}
}

func TestPipeScoredOnce(t *testing.T) {
	pm := newTestPipes(1)
	pm.Spawn()

	total := 0
	for frame := 1; frame <= 173; frame++ {
		n := pm.Advance(3, 80)
		total += n
		if n == 1 && frame != 131 {
			t.Errorf("pipe passed at frame %d, expected frame 131 (right edge 77 < 80)", frame)
		}
	}
	if total != 1 {
		t.Errorf("pipe scored %d times, expected once", total)
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	pm := newTestPipes(1)
	pm.pipes = append(pm.pipes,
		Pipe{X: -200, Width: 70, GapY: 1},
		Pipe{X: 10, Width: 70, GapY: 2},
		Pipe{X: -121, Width: 70, GapY: 3},
		Pipe{X: 300, Width: 70, GapY: 4},
	)

	pm.Prune(-50)

	got := pm.Pipes()
	if len(got) != 2 || got[0].GapY != 2 || got[1].GapY != 4 {
		t.Errorf("expected pipes 2 and 4 in order, got %+v", got)
	}
}

func TestPipeRects(t *testing.T) {
	p := Pipe{X: 100, Width: 70, GapY: 200, GapHeight: 150}

	top := p.TopRect()
	if top != core.NewRect(100, 0, 70, 200) {
		t.Errorf("TopRect = %+v", top)
	}
	bottom := p.BottomRect(600)
	if bottom != core.NewRect(100, 350, 70, 250) {
		t.Errorf("BottomRect = %+v", bottom)
	}
	if top.H+p.GapHeight+bottom.H != 600 {
		t.Error("segments and gap should span the screen height")
	}
}

func TestCheckCollision(t *testing.T) {
	pm := newTestPipes(1)
	pm.pipes = append(pm.pipes, Pipe{X: 100, Width: 70, GapY: 200, GapHeight: 150})

	tests := []struct {
		name string
		r    core.Rect
		want bool
	}{
		{"inside gap", core.NewRect(110, 250, 34, 24), false},
		{"hits top segment", core.NewRect(110, 190, 34, 24), true},
		{"hits bottom segment", core.NewRect(110, 330, 34, 24), true},
		{"left of pipe", core.NewRect(30, 10, 34, 24), false},
		{"touching left edge", core.NewRect(66, 10, 34, 24), false},
		{"overlapping left edge", core.NewRect(67, 10, 34, 24), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pm.CheckCollision(tc.r); got != tc.want {
				t.Errorf("CheckCollision(%+v) = %v, expected %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestBirdOutOfBounds(t *testing.T) {
	tests := []struct {
		y    int
		want bool
	}{
		{0, true},
		{-5, true},
		{1, false},
		{575, false},
		{576, true},
	}

	for _, tc := range tests {
		b := Bird{X: 80, Y: tc.y, W: 34, H: 24}
		if got := b.OutOfBounds(600); got != tc.want {
			t.Errorf("OutOfBounds at Y=%d = %v, expected %v", tc.y, got, tc.want)
		}
	}
}

func TestBirdStartPosition(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig().Player, 600)
	if b.X != 80 || b.Y != 288 || b.W != 34 || b.H != 24 || b.Velocity != 0 {
		t.Errorf("unexpected start bird %+v", b)
	}
}
