package core

// Action represents a semantic control intent, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionThrustForward        // W, Up arrow - accelerate along heading
	ActionThrustBack           // S, Down arrow - accelerate against heading
	ActionStrafeLeft           // A - accelerate to the ship's left
	ActionStrafeRight          // D - accelerate to the ship's right
	ActionRotateCCW            // J, Left arrow - spin counter-clockwise
	ActionRotateCW             // K, Right arrow - spin clockwise
	ActionFire                 // Space - fire both guns
	ActionRestart              // Enter, R - new game after game over
	ActionPause                // Esc, P - pause/unpause
	ActionQuit                 // Q, Ctrl+C - exit
	ActionSuspend              // Ctrl+Z - suspend to the shell
)

// Actions lists every bindable action in display order.
var Actions = []Action{
	ActionThrustForward,
	ActionThrustBack,
	ActionStrafeLeft,
	ActionStrafeRight,
	ActionRotateCCW,
	ActionRotateCW,
	ActionFire,
	ActionRestart,
	ActionPause,
	ActionQuit,
	ActionSuspend,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrustForward:
		return "ThrustForward"
	case ActionThrustBack:
		return "ThrustBack"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotateCW:
		return "RotateCW"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionSuspend:
		return "Suspend"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the control intent read once at the start of a tick.
// Movement and fire fields are level-triggered (true while held).
// Restart and PauseToggle are edge-triggered (true on the tick they were pressed).
type InputSnapshot struct {
	ThrustForward bool
	ThrustBack    bool
	StrafeLeft    bool
	StrafeRight   bool
	RotateCW      bool
	RotateCCW     bool
	Fire          bool
	Restart       bool
	PauseToggle   bool
}

// Set marks the intent for an action as active.
func (in *InputSnapshot) Set(a Action) {
	switch a {
	case ActionThrustForward:
		in.ThrustForward = true
	case ActionThrustBack:
		in.ThrustBack = true
	case ActionStrafeLeft:
		in.StrafeLeft = true
	case ActionStrafeRight:
		in.StrafeRight = true
	case ActionRotateCW:
		in.RotateCW = true
	case ActionRotateCCW:
		in.RotateCCW = true
	case ActionFire:
		in.Fire = true
	case ActionRestart:
		in.Restart = true
	case ActionPause:
		in.PauseToggle = true
	}
}

// Steering is the resolved directional intent for one tick.
// Each axis is -1, 0 or +1; opposing intents cancel.
type Steering struct {
	Forward int // +1 forward, -1 backward
	Strafe  int // +1 right, -1 left
	Turn    int // +1 clockwise, -1 counter-clockwise
}

// Steering resolves opposing intents into signed axes.
func (in InputSnapshot) Steering() Steering {
	return Steering{
		Forward: axis(in.ThrustForward, in.ThrustBack),
		Strafe:  axis(in.StrafeRight, in.StrafeLeft),
		Turn:    axis(in.RotateCW, in.RotateCCW),
	}
}

func axis(pos, neg bool) int {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}
