package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("Empty frame should not have any action")
	}

	f.Set(ActionUp)
	f.Set(ActionBoost)
	if !f.Has(ActionUp) || !f.Has(ActionBoost) {
		t.Error("Frame should have actions that were set")
	}
	if f.Has(ActionDown) {
		t.Error("Frame should not have actions that were not set")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("Zero frame should not have actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := FrameOf(ActionNone)
	if len(f.Actions) != 0 {
		t.Errorf("ActionNone should not be recorded, got %v", f.Actions)
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := FrameOf(ActionLeft, ActionRestart)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionRestart) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionRestart) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionIsHeld(t *testing.T) {
	held := []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionBoost}
	for _, a := range held {
		if !a.IsHeld() {
			t.Errorf("%s should be a held action", a)
		}
	}
	oneShot := []Action{ActionConfirm, ActionRestart, ActionQuit, ActionNone}
	for _, a := range oneShot {
		if a.IsHeld() {
			t.Errorf("%s should not be a held action", a)
		}
	}
}
