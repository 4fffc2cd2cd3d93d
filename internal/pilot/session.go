package pilot

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// Phase is the session-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session owns a GameState and gates its updates by phase.
// Paused and GameOver suppress Update entirely so no timer advances, while
// View keeps returning the frozen frame.
type Session struct {
	state  *GameState
	phase  Phase
	tick   uint64
	logger *log.Logger
}

// NewSession starts a new game in the Playing phase.
func NewSession(rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		state:  NewGameState(rng, logger),
		phase:  PhasePlaying,
		logger: logger,
	}
	s.logger.Info("new game", "asteroids", s.state.AsteroidCount(), "stars", len(s.state.stars))
	return s
}

// Tick runs one scheduler step with the elapsed wall-clock time and the
// input read at the start of the tick.
func (s *Session) Tick(dt float64, in core.InputSnapshot) {
	s.tick++

	switch s.phase {
	case PhasePlaying:
		if in.PauseToggle {
			s.phase = PhasePaused
			s.logger.Debug("paused", "tick", s.tick)
			return
		}
		s.state.Update(dt, in)
		if s.state.GameOver() {
			s.phase = PhaseGameOver
			s.logger.Info("game over",
				"score", s.state.Score(),
				"hits", s.state.TargetsHit(),
				"asteroids", s.state.AsteroidCount())
		}

	case PhasePaused:
		if in.PauseToggle {
			s.phase = PhasePlaying
			s.logger.Debug("resumed", "tick", s.tick)
		}

	case PhaseGameOver:
		if in.Restart {
			s.state.Reset()
			s.phase = PhasePlaying
			s.logger.Info("new game", "asteroids", s.state.AsteroidCount(), "stars", len(s.state.stars))
		}
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// State returns the underlying game state.
func (s *Session) State() *GameState {
	return s.state
}

// View returns the renderable state including the phase.
func (s *Session) View() View {
	v := s.state.View()
	v.Phase = s.phase
	return v
}

// Snapshot returns the complete session state.
func (s *Session) Snapshot() Snapshot {
	snap := s.state.Snapshot()
	snap.Tick = s.tick
	snap.Phase = int(s.phase)
	return snap
}
