package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/desktop"
)

var flagAssets string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a 400x600 window and play.

Controls:
  Space/Up/W  - Flap (restart after game over)
  R           - Restart after game over
  P           - Pause
  Esc/Q       - Quit

Bird frames are read from bird_0..bird_2 (.png or .svg) in the assets
directory; when they are missing the bird is drawn as an ellipse.

Examples:
  flappy play
  flappy play --assets ./sprites
  flappy play --seed 7 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with bird sprite frames (default: from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("flappy")

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagAssets != "" {
		cfg.Render.AssetsDir = flagAssets
	}

	store := openStore(logger)

	runErr := desktop.Run(desktop.Options{
		Config: cfg,
		Seed:   seed(),
		Store:  store,
		Player: playerName(),
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
