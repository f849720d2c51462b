package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
)

var (
	flagFrames   int
	flagRealtime bool
	flagSlack    int
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a display",
	Long: `Play with a simple autopilot and report the result. Without --realtime every
frame is exactly one frame interval long, so a given --seed always produces the
same run.

Examples:
  flappy simulate --frames 36000 --seed 1
  flappy simulate --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock")
	simulateCmd.Flags().IntVar(&flagSlack, "slack", 10, "Autopilot margin above the gap bottom, in pixels")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished runs in the score database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger("flappy-sim")

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := flappy.New(cfg)
	runSeed := seed()
	game.Reset(core.RuntimeConfig{TickRate: cfg.Screen.FPS, Seed: runSeed})

	var wait flappy.WaitFunc
	if flagRealtime {
		pacer := core.NewPacer(core.SystemClock{}, cfg.Screen.FPS)
		defer pacer.Stop()
		wait = pacer.Wait
	}

	logger.Info("simulating", "frames", flagFrames, "seed", runSeed, "realtime", flagRealtime)
	stats, err := flappy.Simulate(ctx, game, flappy.Autopilot{Slack: flagSlack}, flagFrames, wait)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"frames", stats.Frames,
		"crashes", stats.Crashes,
		"best", stats.Best,
		"current", stats.Last,
		"flaps", stats.Flaps,
	)

	if flagSave && len(stats.Scores) > 0 {
		store := openStore(logger)
		if store == nil {
			return
		}
		defer store.Close()
		for _, s := range stats.Scores {
			if s <= 0 {
				continue
			}
			if _, err := store.SaveScore("autopilot", s); err != nil {
				logger.Warn("could not save score", "error", err)
				return
			}
		}
	}
}
