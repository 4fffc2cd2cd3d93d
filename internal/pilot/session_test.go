package pilot

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

func newTestSession(seed int64) *Session {
	return NewSession(rand.New(rand.NewSource(seed)), nil)
}

func TestSessionPauseToggle(t *testing.T) {
	s := newTestSession(1)
	idle := core.InputSnapshot{}
	pause := core.InputSnapshot{PauseToggle: true}

	s.Tick(1.0/TargetFPS, idle)
	s.Tick(1.0/TargetFPS, pause)
	if s.Phase() != PhasePaused {
		t.Fatalf("Phase() = %s, expected Paused", s.Phase())
	}

	frozen := s.State().Snapshot()
	for i := 0; i < 30; i++ {
		s.Tick(1.0/TargetFPS, core.InputSnapshot{Fire: true, ThrustForward: true})
	}
	if now := s.State().Snapshot(); now.Hash() != frozen.Hash() {
		t.Error("game state advanced while paused")
	}
	if s.View().Phase != PhasePaused {
		t.Errorf("View().Phase = %s, expected Paused", s.View().Phase)
	}

	s.Tick(1.0/TargetFPS, pause)
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %s, expected Playing", s.Phase())
	}
	s.Tick(1.0/TargetFPS, idle)
	if now := s.State().Snapshot(); now.Hash() == frozen.Hash() {
		t.Error("game state did not advance after resuming")
	}
}

func TestSessionGameOverAndRestart(t *testing.T) {
	s := newTestSession(2)
	g := s.State()

	// Restart is ignored while playing
	g.score = 50
	s.Tick(0, core.InputSnapshot{Restart: true})
	if s.Phase() != PhasePlaying || g.Score() != 50 {
		t.Fatalf("restart while playing: phase %s score %d", s.Phase(), g.Score())
	}

	g.numLives = 1
	g.asteroids = []Asteroid{rockAt(g.ship.Center(), 40)}
	s.Tick(0, core.InputSnapshot{})
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %s, expected GameOver", s.Phase())
	}

	// Pause is ignored once the game is over
	s.Tick(0, core.InputSnapshot{PauseToggle: true})
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s after pause in game over, expected GameOver", s.Phase())
	}

	s.Tick(1.0/TargetFPS, core.InputSnapshot{Restart: true})
	if s.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %s after restart, expected Playing", s.Phase())
	}
	assertResetValues(t, g)
}

func TestSessionDeterminism(t *testing.T) {
	script := func(i int) (float64, core.InputSnapshot) {
		dt := 1.0 / TargetFPS
		if i%7 == 0 {
			dt *= 2.5 // Slow host tick
		}
		return dt, core.InputSnapshot{
			Fire:          i%3 != 0,
			RotateCW:      (i/40)%2 == 0,
			RotateCCW:     (i/90)%2 == 0,
			ThrustForward: (i/25)%4 == 0,
			ThrustBack:    (i/33)%5 == 0,
			StrafeLeft:    (i/50)%3 == 1,
			PauseToggle:   i == 500 || i == 560,
			Restart:       i%200 == 0,
		}
	}

	a := newTestSession(42)
	b := newTestSession(42)

	for i := 0; i < 3000; i++ {
		dt, in := script(i)
		a.Tick(dt, in)
		b.Tick(dt, in)

		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Hash() != sb.Hash() {
			t.Fatalf("tick %d: sessions diverged", i)
		}
	}

	c := newTestSession(43)
	sa, sc := a.Snapshot(), c.Snapshot()
	if sa.Hash() == sc.Hash() {
		t.Error("different seeds produced identical state")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{PhaseGameOver, "GameOver"},
		{Phase(9), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tc.phase, got, tc.expected)
		}
	}
}
