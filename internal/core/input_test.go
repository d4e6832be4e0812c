package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)

	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Error("Clear did not remove actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
