package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/pixel-pilot/internal/config"
	"github.com/vovakirdan/pixel-pilot/internal/core"
)

func TestHoldTrackerLevelIntents(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionThrustForward, start)
	h.Press(core.ActionRotateCW, start.Add(50*time.Millisecond))

	in := h.Snapshot(start.Add(60 * time.Millisecond))
	if !in.ThrustForward || !in.RotateCW {
		t.Errorf("Snapshot() = %+v, expected thrust and rotate held", in)
	}

	// Still held on the next tick without a new press
	in = h.Snapshot(start.Add(90 * time.Millisecond))
	if !in.ThrustForward || !in.RotateCW {
		t.Errorf("Snapshot() = %+v, expected keys still held", in)
	}

	// Thrust expires first
	in = h.Snapshot(start.Add(120 * time.Millisecond))
	if in.ThrustForward || !in.RotateCW {
		t.Errorf("Snapshot() = %+v, expected only rotate held", in)
	}

	// Auto-repeat keeps a key alive
	h.Press(core.ActionRotateCW, start.Add(140*time.Millisecond))
	in = h.Snapshot(start.Add(200 * time.Millisecond))
	if !in.RotateCW {
		t.Error("auto-repeated key should stay held")
	}

	in = h.Snapshot(start.Add(time.Second))
	if in != (core.InputSnapshot{}) {
		t.Errorf("Snapshot() = %+v, expected nothing held", in)
	}
}

func TestHoldTrackerEdgeIntents(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(time.Second)

	h.Press(core.ActionPause, now)
	h.Press(core.ActionRestart, now)
	h.Press(core.ActionQuit, now)
	h.Press(core.ActionSuspend, now)
	h.Press(core.ActionNone, now)

	in := h.Snapshot(now)
	if !in.PauseToggle || !in.Restart {
		t.Errorf("Snapshot() = %+v, expected pause and restart", in)
	}

	in = h.Snapshot(now)
	if in.PauseToggle || in.Restart {
		t.Errorf("Snapshot() = %+v, edge intents should fire once", in)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(time.Second)

	h.Press(core.ActionFire, now)
	h.Release()
	if in := h.Snapshot(now); in.Fire {
		t.Error("Release() should drop held keys")
	}
}

func TestHoldTrackerDefaultBridgesRepeatDelay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(config.Default().HoldDuration)

	// A held key repeats only after the terminal's initial delay
	h.Press(core.ActionThrustForward, start)
	for _, d := range []time.Duration{100 * time.Millisecond, 250 * time.Millisecond, 400 * time.Millisecond} {
		if in := h.Snapshot(start.Add(d)); !in.ThrustForward {
			t.Errorf("Snapshot() %v after the first press dropped the held key", d)
		}
	}

	h.Press(core.ActionThrustForward, start.Add(450*time.Millisecond))
	if in := h.Snapshot(start.Add(480 * time.Millisecond)); !in.ThrustForward {
		t.Error("auto-repeat should keep the key held")
	}
}
