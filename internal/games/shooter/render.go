package shooter

import (
	"fmt"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// Screen text
const (
	TitleText    = "SKY SHOOTER"
	StartText    = "Press SPACE to start the game."
	GameOverText = "Game Over! Press R to restart."
	PausedText   = "PAUSED"
)

// Health bar geometry, in field units relative to the boss.
const (
	healthBarOffset = 10
	healthBarHeight = 5
)

// Render draws the current frame. The canvas is cleared first, then the
// mode-specific content is drawn back to front.
func (g *Game) Render(c core.Canvas) {
	c.Clear()

	mid := g.rules.fieldH / 2
	switch g.mode {
	case ModeStart:
		c.TextCentered(g.rules.fieldH/3, TitleText, core.ColorGreen)
		c.TextCentered(mid, StartText, core.ColorWhite)

	case ModeGameOver:
		c.TextCentered(mid, GameOverText, core.ColorWhite)
		c.TextCentered(mid+g.rules.fieldH/12, fmt.Sprintf("Final score: %d", g.world.Score), core.ColorYellow)

	case ModePlaying:
		g.renderWorld(c)
		if g.paused {
			c.TextCentered(mid, PausedText, core.ColorYellow)
		}
	}
}

func (g *Game) renderWorld(c core.Canvas) {
	w := &g.world

	c.FillRect(w.Player.Rect, core.ColorGreen)
	for _, s := range w.Shots {
		c.FillRect(s.Rect, core.ColorYellow)
	}
	for _, s := range w.EnemyShots {
		c.FillRect(s.Rect, core.ColorRed)
	}
	for _, e := range w.Enemies {
		c.FillRect(e.Rect, core.ColorRed)
	}

	if w.Boss.Active {
		b := w.Boss.Rect
		c.FillRect(b, core.ColorMagenta)
		bar := core.NewRect(b.X, b.Y-healthBarOffset, b.W*w.Boss.Health/g.rules.bossHealth, healthBarHeight)
		c.FillRect(bar, core.ColorRed)
	}

	c.Text(10, 10, fmt.Sprintf("Score: %d", w.Score), core.ColorWhite)
}
