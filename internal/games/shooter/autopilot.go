package shooter

import "github.com/vovakirdan/skyshooter/internal/core"

// Autopilot drives a game without a human for headless runs. It steers
// under the lowest threat and fires at a fixed cadence.
type Autopilot struct {
	FireEvery int  // Fire on every Nth playing tick; 0 never fires
	Restart   bool // Start a new session after game over

	ticks int
}

// Next returns the input frame for the game's next tick.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.Mode() {
	case ModeStart:
		in.Set(core.ActionFire)
	case ModeGameOver:
		if a.Restart {
			in.Set(core.ActionRestart)
		}
	case ModePlaying:
		a.ticks++
		if target, ok := a.target(&g.world); ok {
			center := g.world.Player.Rect.CenterX()
			switch {
			case target < center-g.rules.playerSpeed:
				in.Set(core.ActionLeft)
			case target > center+g.rules.playerSpeed:
				in.Set(core.ActionRight)
			}
		}
		if a.FireEvery > 0 && a.ticks%a.FireEvery == 0 {
			in.Set(core.ActionFire)
		}
	}

	return in
}

// target picks the x center of the boss, or else of the lowest enemy.
func (a *Autopilot) target(w *World) (int, bool) {
	if w.Boss.Active {
		return w.Boss.Rect.CenterX(), true
	}
	best, found := 0, false
	lowest := 0
	for _, e := range w.Enemies {
		if !found || e.Rect.Y > lowest {
			best, lowest, found = e.Rect.CenterX(), e.Rect.Y, true
		}
	}
	return best, found
}
