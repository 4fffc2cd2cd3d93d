package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-pilot/internal/config"
	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// KeyMap holds the key bindings for every control intent.
type KeyMap struct {
	ThrustForward key.Binding
	ThrustBack    key.Binding
	StrafeLeft    key.Binding
	StrafeRight   key.Binding
	RotateCCW     key.Binding
	RotateCW      key.Binding
	Fire          key.Binding
	Restart       key.Binding
	Pause         key.Binding
	Quit          key.Binding
	Suspend       key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	bind := func(a core.Action, desc string) key.Binding {
		keys := cfg.For(a)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}

	return KeyMap{
		ThrustForward: bind(core.ActionThrustForward, "thrust"),
		ThrustBack:    bind(core.ActionThrustBack, "reverse"),
		StrafeLeft:    bind(core.ActionStrafeLeft, "strafe left"),
		StrafeRight:   bind(core.ActionStrafeRight, "strafe right"),
		RotateCCW:     bind(core.ActionRotateCCW, "turn left"),
		RotateCW:      bind(core.ActionRotateCW, "turn right"),
		Fire:          bind(core.ActionFire, "fire"),
		Restart:       bind(core.ActionRestart, "new game"),
		Pause:         bind(core.ActionPause, "pause"),
		Quit:          bind(core.ActionQuit, "quit"),
		Suspend:       bind(core.ActionSuspend, "suspend"),
	}
}

// helpKeys formats a key list for the help line.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if !slices.Contains(names, k) {
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}

// Binding returns the binding for an action.
func (k KeyMap) Binding(a core.Action) key.Binding {
	switch a {
	case core.ActionThrustForward:
		return k.ThrustForward
	case core.ActionThrustBack:
		return k.ThrustBack
	case core.ActionStrafeLeft:
		return k.StrafeLeft
	case core.ActionStrafeRight:
		return k.StrafeRight
	case core.ActionRotateCCW:
		return k.RotateCCW
	case core.ActionRotateCW:
		return k.RotateCW
	case core.ActionFire:
		return k.Fire
	case core.ActionRestart:
		return k.Restart
	case core.ActionPause:
		return k.Pause
	case core.ActionQuit:
		return k.Quit
	case core.ActionSuspend:
		return k.Suspend
	default:
		return key.NewBinding()
	}
}

// Action translates a key message to the action bound to it.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range core.Actions {
		if key.Matches(msg, k.Binding(a)) {
			return a
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the in-game help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ThrustForward, k.RotateCCW, k.RotateCW, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ThrustForward, k.ThrustBack, k.StrafeLeft, k.StrafeRight},
		{k.RotateCCW, k.RotateCW, k.Fire},
		{k.Pause, k.Restart, k.Suspend, k.Quit},
	}
}
