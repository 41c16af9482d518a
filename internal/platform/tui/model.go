package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the contract between the simulation and the terminal loop.
// The model drives it with intents and renders whatever it draws.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// Model is the Bubble Tea model that runs the game loop. Terminals report
// key presses but not key releases, so held movement keys are tracked with a
// hold counter refreshed by key repeat; when the counter expires the model
// synthesizes the matching stop intent.
type Model struct {
	game   Game
	screen *core.Screen
	cfg    core.RuntimeConfig
	ui     config.UIConfig

	frame core.InputFrame
	state core.GameState
	keys  KeyMap
	help  help.Model

	leftHold  int
	rightHold int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, ui config.UIConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 0)),
		cfg:    cfg,
		ui:     ui,
		frame:  core.NewInputFrame(),
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.cfg.TickRate)
}

// gameConfig returns the runtime config handed to the game, with the help
// bar row carved out of the reported terminal height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.cfg
	cfg.ScreenH = core.Max(cfg.ScreenH-helpRows, 0)
	return cfg
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

// handleKey buffers intents for the next tick. Movement keys also refresh
// their hold counters; repeat events keep a held key alive.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.leftHold == 0 {
			m.frame.Set(core.IntentMoveLeftStart)
		}
		m.leftHold = m.ui.HoldTicks

	case key.Matches(msg, m.keys.Right):
		if m.rightHold == 0 {
			m.frame.Set(core.IntentMoveRightStart)
		}
		m.rightHold = m.ui.HoldTicks

	case key.Matches(msg, m.keys.Fire):
		m.frame.Set(core.IntentFire)

	case key.Matches(msg, m.keys.Pause):
		m.frame.Set(core.IntentPause)

	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver {
			m.frame.Set(core.IntentRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	m.game.Resize(m.gameConfig())
	return m, nil
}

// handleTick expires hold counters, steps the simulation with the buffered
// frame, and clears the frame for the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.leftHold > 0 {
		m.leftHold--
		if m.leftHold == 0 {
			m.frame.Set(core.IntentMoveLeftStop)
		}
	}
	if m.rightHold > 0 {
		m.rightHold--
		if m.rightHold == 0 {
			m.frame.Set(core.IntentMoveRightStop)
		}
	}

	result := m.game.Step(m.frame)
	m.state = result.State

	m.frame.Clear()
	return m, tickCmd(m.cfg.TickRate)
}

// View renders the playfield plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var body string
	if m.ui.Color {
		body = RenderScreen(m.screen)
	} else {
		body = RenderScreenPlain(m.screen)
	}
	return body + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game Game, cfg core.RuntimeConfig, ui config.UIConfig) error {
	model := NewModel(game, cfg, ui)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
