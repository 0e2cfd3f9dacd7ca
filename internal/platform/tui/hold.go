package tui

import "github.com/vovakirdan/pizza-rush/internal/core"

// HoldLatch turns discrete terminal key presses into held key state.
// Terminals report presses and autorepeat, never releases, so a held action
// stays down for a fixed window after its latest press.
type HoldLatch struct {
	hold    core.Millis
	pressed map[core.Action]core.Millis
}

// NewHoldLatch creates a latch that keeps actions held for hold milliseconds.
func NewHoldLatch(hold core.Millis) *HoldLatch {
	return &HoldLatch{
		hold:    hold,
		pressed: make(map[core.Action]core.Millis),
	}
}

// Press records a press of a held action at time now.
// Single-shot actions are ignored.
func (l *HoldLatch) Press(a core.Action, now core.Millis) {
	if !a.IsHeld() {
		return
	}
	l.pressed[a] = now
}

// Frame returns the actions still held at time now and forgets expired ones.
func (l *HoldLatch) Frame(now core.Millis) core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range l.pressed {
		if now-at > l.hold {
			delete(l.pressed, a)
			continue
		}
		f.Set(a)
	}
	return f
}

// Release drops every held action.
func (l *HoldLatch) Release() {
	clear(l.pressed)
}
