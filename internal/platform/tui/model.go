package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

// statusRows is the number of terminal rows below the playfield.
const statusRows = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	recorder   *storage.Recorder
	config     core.RuntimeConfig
	timer      *core.FrameTimer
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	saveErr    error
	quitting   bool
}

// NewModel creates a session for player. store may be nil, in which case
// scores are not recorded.
func NewModel(game *flappy.Game, store *storage.Store, player string, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Screen.FPS
	}

	recorder, err := storage.NewRecorder(store, player)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-statusRows),
		recorder:   recorder,
		config:     cfg,
		timer:      core.NewFrameTimer(nil),
		keyMapper:  NewKeyMapper(DefaultKeyMap()),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		saveErr:    err,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.timer.Reset()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-statusRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, m.gameState.GameOver, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.timer.TickAt(now)

	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State

	// Failures are shown in the status line rather than logged, since the
	// alternate screen owns the terminal.
	if _, err := m.recorder.Observe(result); err != nil {
		m.saveErr = err
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%s  best %d  ", m.recorder.Player(), m.recorder.Best())
	if m.saveErr != nil {
		status += "(scores unavailable)  "
	}
	return statusStyle.Render(status) + m.help.View(m.keyMapper.Keys())
}

// Best returns the player's best score, including the current session.
func (m Model) Best() int {
	return m.recorder.Best()
}

// Run starts the Bubble Tea program with the given model.
func Run(game *flappy.Game, store *storage.Store, player string, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
