// Package desktop runs the game in a window with ebiten.
package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

// Options configures a desktop session.
type Options struct {
	Config config.FlappyConfig
	Seed   int64
	Store  *storage.Store // Optional; nil disables score saving
	Player string
	Logger *log.Logger
}

// Game adapts the simulation to ebiten's Game interface.
type Game struct {
	sim      *flappy.Game
	cfg      config.FlappyConfig
	timer    *core.FrameTimer
	recorder *storage.Recorder
	logger   *log.Logger

	sprites     assets.Set
	textures    []*ebiten.Image // One per sprite, indexed like sprites
	scoreFace   *text.GoTextFace
	messageFace *text.GoTextFace
	hintFace    *text.GoTextFace
}

// New prepares a window session. Missing or broken sprite frames are logged
// and drawn as ellipses.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	arcade, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("desktop: load score font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("desktop: load message font: %w", err)
	}

	sim := flappy.New(opts.Config)
	sim.Reset(core.RuntimeConfig{TickRate: opts.Config.Screen.FPS, Seed: opts.Seed})

	recorder, err := storage.NewRecorder(opts.Store, opts.Player)
	if err != nil {
		logger.Warn("could not read best score", "error", err)
	}

	g := &Game{
		sim:         sim,
		cfg:         opts.Config,
		timer:       core.NewFrameTimer(nil),
		recorder:    recorder,
		logger:      logger,
		scoreFace:   &text.GoTextFace{Source: arcade, Size: 48},
		messageFace: &text.GoTextFace{Source: regular, Size: 48},
		hintFace:    &text.GoTextFace{Source: regular, Size: 24},
	}
	g.loadSprites()

	return g, nil
}

// loadSprites loads the bird frames and uploads one texture per frame:
// the bitmap, or the ellipse rasterized in the sprite's color.
func (g *Game) loadSprites() {
	p := g.cfg.Player

	set, err := assets.LoadBird(g.cfg.Render.AssetsDir, flappy.BirdFrames, p.Width, p.Height)
	if err != nil {
		g.logger.Warn("bird sprites unavailable, using ellipse", "dir", g.cfg.Render.AssetsDir, "error", err)
	}
	if len(set) == 0 {
		set = assets.FallbackSet(flappy.BirdFrames)
	}

	g.sprites = set
	g.textures = make([]*ebiten.Image, len(set))
	for i, sp := range set {
		switch sp.Kind {
		case assets.KindImage:
			g.textures[i] = ebiten.NewImageFromImage(sp.Image)
		case assets.KindEllipse:
			g.textures[i] = ebiten.NewImageFromImage(assets.RasterizeEllipse(p.Width, p.Height, sp.Color))
		}
		g.logger.Debug("bird frame", "frame", i, "kind", sp.Kind)
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	in, quit := readInput(g.sim.Phase() == flappy.PhaseGameOver)
	if quit {
		return ebiten.Termination
	}

	res := g.sim.Step(in, g.timer.Tick())
	if res.Crashed {
		g.logger.Debug("crashed", "score", res.State.Score, "ticks", g.sim.Ticks())
	}

	saved, err := g.recorder.Observe(res)
	switch {
	case err != nil:
		g.logger.Warn("could not save score", "error", err)
	case saved:
		g.logger.Info("score saved", "player", g.recorder.Player(), "score", res.State.Score)
	}
	return nil
}

// Layout returns the fixed logical canvas size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Best returns the best score seen in this session or stored for the player.
func (g *Game) Best() int {
	return g.recorder.Best()
}

// Run opens the window and blocks until the player quits or closes it.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Config.Screen.Width, opts.Config.Screen.Height)
	ebiten.SetWindowTitle(g.sim.Title())
	ebiten.SetTPS(opts.Config.Screen.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

var (
	skyColor    = color.RGBA{R: 64, G: 192, B: 255, A: 255}
	groundColor = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	pipeColor   = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	gameOverRed = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	textColor   = color.White
)
