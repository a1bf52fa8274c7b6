package core

import "testing"

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
	}{
		{StatusWaiting, false},
		{StatusPlaying, false},
		{StatusShowing, false},
		{StatusGameOver, true},
		{StatusVictory, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%v.Terminal() = %v, expected %v", tt.status, got, tt.terminal)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusWaiting, "waiting"},
		{StatusPlaying, "playing"},
		{StatusShowing, "showing"},
		{StatusGameOver, "gameover"},
		{StatusVictory, "victory"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, expected %q", tt.status, got, tt.want)
		}
	}
}

func TestInputFrameDigit(t *testing.T) {
	f := NewInputFrame()

	if f.Digit != 0 {
		t.Errorf("New frame Digit = %d, expected 0", f.Digit)
	}

	f.SetDigit(7)
	if f.Digit != 7 {
		t.Errorf("After SetDigit(7), Digit = %d", f.Digit)
	}

	// Out-of-range digits are ignored
	f.SetDigit(0)
	f.SetDigit(10)
	if f.Digit != 7 {
		t.Errorf("Out-of-range SetDigit should be ignored, Digit = %d", f.Digit)
	}

	clone := f.Clone()
	if clone.Digit != 7 {
		t.Errorf("Clone Digit = %d, expected 7", clone.Digit)
	}

	f.Clear()
	if f.Digit != 0 {
		t.Errorf("After Clear, Digit = %d, expected 0", f.Digit)
	}
	if clone.Digit != 7 {
		t.Errorf("Clear should not affect the clone, clone.Digit = %d", clone.Digit)
	}
}

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	f.Set(ActionLeft)
	f.Set(ActionFire)

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionFire) {
		t.Error("Clear should drop all actions")
	}

	// Zero-value frame must be safe to query
	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero-value frame should report no actions")
	}
}
