package core

import "testing"

func TestInputSnapshotSet(t *testing.T) {
	tests := []struct {
		action   Action
		expected InputSnapshot
	}{
		{ActionThrustForward, InputSnapshot{ThrustForward: true}},
		{ActionThrustBack, InputSnapshot{ThrustBack: true}},
		{ActionStrafeLeft, InputSnapshot{StrafeLeft: true}},
		{ActionStrafeRight, InputSnapshot{StrafeRight: true}},
		{ActionRotateCW, InputSnapshot{RotateCW: true}},
		{ActionRotateCCW, InputSnapshot{RotateCCW: true}},
		{ActionFire, InputSnapshot{Fire: true}},
		{ActionRestart, InputSnapshot{Restart: true}},
		{ActionPause, InputSnapshot{PauseToggle: true}},
		// Process-level actions carry no game intent
		{ActionNone, InputSnapshot{}},
		{ActionQuit, InputSnapshot{}},
		{ActionSuspend, InputSnapshot{}},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			var in InputSnapshot
			in.Set(tc.action)
			if in != tc.expected {
				t.Errorf("Set(%s) = %+v, expected %+v", tc.action, in, tc.expected)
			}
		})
	}
}

func TestSteeringCancelsOpposites(t *testing.T) {
	tests := []struct {
		name     string
		in       InputSnapshot
		expected Steering
	}{
		{"idle", InputSnapshot{}, Steering{}},
		{"forward", InputSnapshot{ThrustForward: true}, Steering{Forward: 1}},
		{"back", InputSnapshot{ThrustBack: true}, Steering{Forward: -1}},
		{"forward and back cancel", InputSnapshot{ThrustForward: true, ThrustBack: true}, Steering{}},
		{"strafe left", InputSnapshot{StrafeLeft: true}, Steering{Strafe: -1}},
		{"strafes cancel", InputSnapshot{StrafeLeft: true, StrafeRight: true}, Steering{}},
		{"clockwise", InputSnapshot{RotateCW: true}, Steering{Turn: 1}},
		{"rotations cancel", InputSnapshot{RotateCW: true, RotateCCW: true}, Steering{}},
		{
			"combined",
			InputSnapshot{ThrustForward: true, StrafeRight: true, RotateCCW: true},
			Steering{Forward: 1, Strafe: 1, Turn: -1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Steering(); got != tc.expected {
				t.Errorf("Steering() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
