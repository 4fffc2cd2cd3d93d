package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-pilot/internal/config"
	"github.com/vovakirdan/pixel-pilot/internal/core"
	"github.com/vovakirdan/pixel-pilot/internal/pilot"
)

// testClock is a manually advanced time source.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func newTestModel(c *testClock) Model {
	cfg := config.Default()
	return NewModel(Options{
		Runtime:      core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7},
		Keys:         cfg.Keys,
		HoldDuration: cfg.HoldDuration,
		Now:          c.now,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesSession(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := newTestModel(c)

	m, cmd := update(t, m, TickMsg(c.t))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	first := m.Session().Snapshot()

	m, _ = update(t, m, runeKey('w'))
	c.t = c.t.Add(16 * time.Millisecond)
	m, _ = update(t, m, TickMsg(c.t))

	second := m.Session().Snapshot()
	if first.Hash() == second.Hash() {
		t.Error("second tick did not advance the game")
	}
	if !m.Session().View().Ship.Thrust {
		t.Error("held w should show thrust")
	}
}

func TestModelPauseKey(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := newTestModel(c)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(c.t))

	if m.Session().Phase() != pilot.PhasePaused {
		t.Fatalf("Phase() = %s, expected Paused", m.Session().Phase())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused frame should show the overlay")
	}
}

func TestModelQuit(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := newTestModel(c)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
	if _, cmd := update(t, m, TickMsg(c.t)); cmd != nil {
		t.Error("no more ticks after quitting")
	}
}

func TestModelSuspendResume(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := newTestModel(c)

	m, _ = update(t, m, TickMsg(c.t))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if cmd == nil {
		t.Fatal("ctrl+z should return the suspend command")
	}
	before := m.Session().Snapshot()
	state := m.Session().State().Snapshot()

	// Time passes while the process is stopped
	c.t = c.t.Add(30 * time.Second)
	m, cmd = update(t, m, TickMsg(c.t))
	if cmd == nil {
		t.Fatal("tick loop should keep running while suspended")
	}
	if got := m.Session().Snapshot(); got.Hash() != before.Hash() {
		t.Fatal("suspended model should not advance the game")
	}

	m, _ = update(t, m, tea.ResumeMsg{})
	m, _ = update(t, m, TickMsg(c.t))
	if got := m.Session().State().Snapshot(); got.Hash() != state.Hash() {
		t.Error("first tick after resume should see a zero delta")
	}

	c.t = c.t.Add(16 * time.Millisecond)
	m, _ = update(t, m, TickMsg(c.t))
	if got := m.Session().State().Snapshot(); got.Hash() == state.Hash() {
		t.Error("game should advance again after resume")
	}
}

func TestModelResize(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := newTestModel(c)
	before := m.Session().Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	after := m.Session().Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("resize should not touch the game")
	}
}

func TestModelView(t *testing.T) {
	c := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := newTestModel(c)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View() should show the score")
	}
	if !strings.Contains(view, "fire") {
		t.Error("View() should show the help line")
	}
	if lines := strings.Count(view, "\n"); lines != 24 {
		t.Errorf("View() has %d line breaks, expected 24", lines)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorCyan)
	s.DrawText(2, 0, "cd", core.ColorDefault)
	s.DrawText(0, 1, "xyz", core.Color(200)) // Unknown colors fall back to default

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have one line break, got %q", out)
	}
}
