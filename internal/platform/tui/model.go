package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Model is the Bubble Tea model that schedules frames for a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       keyHold
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	gen        int  // Current tick chain
	halted     bool // Scheduling stopped until restart
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards lifecycle events.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       newKeyHold(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the game and the first tick chain.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		return m.restart()

	case core.ActionHalt:
		if !m.halted {
			m.halted = true
			m.gen++
			m.logger.Info("scheduling halted", "game", m.game.ID())
		}
		return m, nil
	}

	// Input is dropped while no frames are scheduled
	if m.halted {
		return m, nil
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.inputFrame.Set(action)
		m.hold.press(action)
	case core.ActionStop:
		m.inputFrame.Set(action)
		m.hold.release()
	case core.ActionLaunch:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart replaces the game state and starts a new tick chain, so a tick
// already in flight for the old one is ignored.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.hold.release()
	m.halted = false
	m.gen++
	m.logger.Info("game restarted", "game", m.game.ID())
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleResize processes window resize events.
// The field keeps its own coordinates, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.halted {
		return m, nil
	}

	if m.hold.tick() {
		m.inputFrame.Set(core.ActionStop)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID())
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// Halted reports whether frame scheduling is stopped.
func (m Model) Halted() bool {
	return m.halted
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	rows := max(m.config.ScreenH-lipgloss.Height(footer), 0)
	m.screen.Resize(m.config.ScreenW, rows)

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// footer renders the status badge and key help.
func (m Model) footer() string {
	view := m.help.View(m.keys)
	if m.halted {
		return statusStyle.Render("HALTED") + " " + view
	}
	return view
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
