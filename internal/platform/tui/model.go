package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// Game is the simulation the model drives, one Step per tick.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(c core.Canvas)
	State() core.GameState
	Field() (w, h int)
}

// Options configures a Model.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int         // Ticks a movement key stays held after a press
	Logger    *log.Logger // Nil discards
}

// helpRows is the number of terminal rows reserved for the help bar.
const helpRows = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	viewport   *core.Viewport
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       holdTracker
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	best       int // Best score this run, never persisted
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1))
	fw, fh := game.Field()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     screen,
		viewport:   core.NewViewport(screen, fw, fh),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       newHoldTracker(opts.HoldTicks),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game ready", "title", m.game.Title(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "best", m.best)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.press(a)
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleResize processes window resize events. The play field has a fixed
// logical size, so the game keeps running and only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	m.hold.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.State.GameOver && !prev.GameOver {
		m.hold.release()
		if result.State.Score > m.best {
			m.best = result.State.Score
		}
		m.logger.Info("session over", "score", result.State.Score, "best", m.best)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// Best returns the best score of this run.
func (m Model) Best() int {
	return m.best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.viewport)

	status := fmt.Sprintf("best %d  ", m.best)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status+m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
