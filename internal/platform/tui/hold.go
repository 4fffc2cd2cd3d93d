package tui

import (
	"time"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// HoldTracker turns terminal key presses into an InputSnapshot.
// Terminals deliver presses and auto-repeats but never releases, so a
// movement or fire key counts as held while it was last seen less than the
// hold duration ago. Restart and Pause are edge-triggered: each press shows
// up in exactly one snapshot.
type HoldTracker struct {
	hold     time.Duration
	lastSeen map[core.Action]time.Time
	edges    core.InputSnapshot
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key press for an action at the given time.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionNone, core.ActionQuit, core.ActionSuspend:
		return
	case core.ActionRestart, core.ActionPause:
		h.edges.Set(a)
	default:
		h.lastSeen[a] = at
	}
}

// Snapshot returns the intents active at now and consumes pending
// edge-triggered presses.
func (h *HoldTracker) Snapshot(now time.Time) core.InputSnapshot {
	in := h.edges
	h.edges = core.InputSnapshot{}

	for a, seen := range h.lastSeen {
		if now.Sub(seen) < h.hold {
			in.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return in
}

// Release forgets every held key, e.g. when the game is paused.
func (h *HoldTracker) Release() {
	clear(h.lastSeen)
}
