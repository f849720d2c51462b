// flappy is a Flappy Bird clone that plays in a window, in the terminal, or
// over SSH.
//
// Usage:
//
//	flappy [play]            - Play in a desktop window
//	flappy term              - Play in the terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show high scores
//	flappy simulate          - Run the autopilot headless
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate (default: from config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappy/scores.db)
//	--config <path>     - Use a specific config file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird for the desktop, the terminal and SSH",
	Long: `Flap through the pipes. Every pipe passed scores a point; touching a pipe,
the ceiling or the floor ends the run.

Available commands:
  play      - Play in a desktop window (default)
  term      - Play in the terminal
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run the autopilot without a display
  config    - Print the effective configuration

Examples:
  flappy
  flappy term --seed 42
  flappy serve --ssh :2222
  flappy scores --limit 20`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for the score table (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a stderr logger at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the configuration and applies the --fps override.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}
	logger.Debug("configuration loaded", "source", source)
	return cfg, nil
}

// seed returns --seed, or a clock-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName returns --player, falling back to the login name.
func playerName() string {
	if name := strings.TrimSpace(flagPlayer); name != "" {
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.AnonymousPlayer
}

// openStore opens the score database. Failure is not fatal for play: the
// warning is logged and nil is returned.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}
