package tui

import "github.com/vovakirdan/skyshooter/internal/core"

// holdTracker emulates held movement keys. Terminals deliver presses and
// auto-repeats but never releases, so a direction stays held for a fixed
// number of ticks after its last press. Pressing the opposite direction
// releases the other one at once.
type holdTracker struct {
	window int
	left   int // Remaining held ticks
	right  int
}

func newHoldTracker(window int) holdTracker {
	return holdTracker{window: max(window, 1)}
}

// press records a key press. Non-movement actions are ignored.
func (h *holdTracker) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.window, 0
	case core.ActionRight:
		h.right, h.left = h.window, 0
	}
}

// apply adds the held directions to the frame and ages them by one tick.
func (h *holdTracker) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// release drops both directions.
func (h *holdTracker) release() {
	h.left, h.right = 0, 0
}
