package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingGame captures every frame handed to Step so tests can inspect
// what the model fed the simulation.
type recordingGame struct {
	frames []core.InputFrame
	state  core.GameState
}

func (g *recordingGame) ID() string                  { return "recording" }
func (g *recordingGame) Title() string               { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig)    {}
func (g *recordingGame) Resize(core.RuntimeConfig)   {}
func (g *recordingGame) Render(*core.Screen)         {}
func (g *recordingGame) State() core.GameState       { return g.state }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func testUI() config.UIConfig {
	return config.UIConfig{FPS: 60, Color: false, HoldTicks: 3}
}

func newTestModel(g Game) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewModel(g, cfg, testUI())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestKeyPressBuffersStartIntent(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)

	if len(g.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(g.frames))
	}
	if !g.frames[0].Has(core.IntentMoveLeftStart) {
		t.Error("first tick after key press should carry MoveLeftStart")
	}
	if g.frames[0].Has(core.IntentMoveLeftStop) {
		t.Error("fresh press must not carry a stop intent")
	}
}

func TestHoldExpirySynthesizesStop(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	// HoldTicks is 3: the stop intent lands on the third tick after the press.
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	last := g.frames[len(g.frames)-1]
	if !last.Has(core.IntentMoveLeftStop) {
		t.Error("hold expiry should synthesize MoveLeftStop")
	}
	for _, f := range g.frames[:len(g.frames)-1] {
		if f.Has(core.IntentMoveLeftStop) {
			t.Error("stop intent fired before the hold expired")
		}
	}
}

func TestKeyRepeatRefreshesHold(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	m = tick(t, m)

	// Repeat event before expiry keeps the key held without restarting.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	m = tick(t, m)

	starts := 0
	for _, f := range g.frames {
		if f.Has(core.IntentMoveLeftStart) {
			starts++
		}
		if f.Has(core.IntentMoveLeftStop) {
			t.Error("stop intent fired while the key was still held")
		}
	}
	if starts != 1 {
		t.Errorf("got %d start intents, want 1 (repeat must not re-start)", starts)
	}
}

func TestIndependentHoldsPerKey(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	last := g.frames[len(g.frames)-1]
	if !last.Has(core.IntentMoveLeftStop) || !last.Has(core.IntentMoveRightStop) {
		t.Error("both holds expired on the same tick, both stops should fire")
	}
}

func TestFireAndPauseAreBuffered(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = tick(t, m)

	if !g.frames[0].Has(core.IntentFire) {
		t.Error("space should buffer Fire")
	}
	if !g.frames[0].Has(core.IntentPause) {
		t.Error("p should buffer Pause")
	}
}

func TestFrameClearedBetweenTicks(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = tick(t, m)

	if g.frames[1].Has(core.IntentFire) {
		t.Error("Fire must not leak into the next tick")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	// While playing, r is ignored.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m)
	if g.frames[0].Has(core.IntentRestart) {
		t.Error("restart buffered while still playing")
	}

	// After a game over, r is buffered.
	g.state = core.GameState{GameOver: true}
	m = tick(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m)
	last := g.frames[len(g.frames)-1]
	if !last.Has(core.IntentRestart) {
		t.Error("restart not buffered after game over")
	}
}

func TestQuitKeyStopsProgram(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("quit key produced %v, want tea.Quit", msg)
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("quitting view = %q, want empty", v)
	}
}

func TestResizeDoesNotRestart(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.cfg.ScreenW != 100 || m.cfg.ScreenH != 40 {
		t.Errorf("config not updated on resize: %dx%d", m.cfg.ScreenW, m.cfg.ScreenH)
	}
	if got := m.screen.Height(); got != 40-helpRows {
		t.Errorf("screen height = %d, want %d", got, 40-helpRows)
	}
}
