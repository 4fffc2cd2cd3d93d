package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pilot/internal/clock"
	"github.com/vovakirdan/pixel-pilot/internal/config"
	"github.com/vovakirdan/pixel-pilot/internal/core"
	"github.com/vovakirdan/pixel-pilot/internal/pilot"
)

// Options configures a game model.
type Options struct {
	Runtime      core.RuntimeConfig
	Keys         config.KeyConfig
	HoldDuration time.Duration
	Logger       *log.Logger
	Now          func() time.Time // Wall clock; nil means time.Now
}

// Model is the Bubble Tea model running a Pixel Pilot session.
// Each TickMsg reads the held-key snapshot, advances the session by the
// measured wall-clock delta and schedules the next tick.
type Model struct {
	session   *pilot.Session
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	held      *HoldTracker
	pacer     *clock.Pacer
	logger    *log.Logger
	now       func() time.Time
	config    core.RuntimeConfig
	quitting  bool
	suspended bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	logger.Info("starting", "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	h := help.New()
	h.ShowAll = false

	return Model{
		session: pilot.NewSession(rand.New(rand.NewSource(cfg.Seed)), logger), //#nosec G404 -- gameplay randomness
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		keys:    NewKeyMap(opts.Keys),
		help:    h,
		held:    NewHoldTracker(opts.HoldDuration),
		pacer:   clock.NewPacerWithClock(cfg.TickRate, now),
		logger:  logger,
		now:     now,
		config:  cfg,
	}
}

// playfieldHeight reserves the bottom terminal row for the help line.
func playfieldHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(0)
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

	case tea.ResumeMsg:
		return m.handleResume()
	}

	return m, nil
}

// handleKey records the key press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit",
			"score", m.session.State().Score(),
			"phase", m.session.Phase())
		return m, tea.Quit
	}
	if action == core.ActionSuspend {
		m.suspended = true
		m.held.Release()
		m.logger.Debug("suspend")
		return m, tea.Suspend
	}

	m.held.Press(action, m.now())
	return m, nil
}

// handleResume restarts frame timing so the time spent suspended is not
// fed to the simulation as one huge delta.
func (m Model) handleResume() (tea.Model, tea.Cmd) {
	m.suspended = false
	m.pacer.Reset()
	m.logger.Debug("resume")
	return m, nil
}

// handleResize processes window resize events. The arena is scaled to the
// new size; the game itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	// Ticks queued around a suspend keep the loop alive without stepping
	if m.suspended {
		return m, tickCmd(m.pacer.Interval())
	}

	dt := m.pacer.Begin()
	m.session.Tick(dt.Seconds(), m.held.Snapshot(m.now()))

	if m.session.Phase() != pilot.PhasePlaying {
		m.held.Release()
	}

	return m, tickCmd(m.pacer.Wait())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pilot.Render(m.session.View(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.helpLine())
}

// helpLine shows the keys that matter in the current phase.
func (m Model) helpLine() string {
	switch m.session.Phase() {
	case pilot.PhasePaused:
		return m.help.ShortHelpView([]key.Binding{m.keys.Pause, m.keys.Quit})
	case pilot.PhaseGameOver:
		return m.help.ShortHelpView([]key.Binding{m.keys.Restart, m.keys.Quit})
	default:
		return m.help.View(m.keys)
	}
}

// Session returns the running session.
func (m Model) Session() *pilot.Session {
	return m.session
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
