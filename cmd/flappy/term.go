package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The 400x600 playfield is scaled to the terminal size.

Controls:
  Space/Up/W  - Flap (restart after game over)
  R           - Restart after game over
  P           - Pause
  Q/Esc       - Quit

Examples:
  flappy term
  flappy term --seed 42 --player alice`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func runTerm(_ *cobra.Command, _ []string) {
	logger := newLogger("flappy")

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// The alternate screen owns the terminal from here on.
	logger.SetOutput(io.Discard)

	runErr := tui.Run(flappy.New(cfg), store, playerName(), core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Screen.FPS,
		Seed:     seed(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
