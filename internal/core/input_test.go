package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionCycle) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionCycle)
	f.Set(ActionLeft)
	if !f.Has(ActionCycle) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionCycle) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionCycle) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionCycle:   "Cycle",
		ActionShuffle: "Shuffle",
		ActionParty:   "Party",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
