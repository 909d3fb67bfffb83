package shooter

import (
	"fmt"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// recordingSink collects every cue played.
type recordingSink struct {
	cues []core.Cue
}

func (s *recordingSink) Play(c core.Cue) {
	s.cues = append(s.cues, c)
}

func (s *recordingSink) count(c core.Cue) int {
	n := 0
	for _, got := range s.cues {
		if got == c {
			n++
		}
	}
	return n
}

func (s *recordingSink) reset() {
	s.cues = nil
}

// recordingCanvas collects draw calls as readable strings.
type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) Clear() {
	c.ops = append(c.ops, "clear")
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("rect %d,%d %dx%d %s", r.X, r.Y, r.W, r.H, col))
}

func (c *recordingCanvas) Text(x, y int, text string, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("text %d,%d %q %s", x, y, text, col))
}

func (c *recordingCanvas) TextCentered(y int, text string, col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("center %d %q %s", y, text, col))
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newPlaying returns a game that has just left the title screen.
func newPlaying(cfg config.ShooterConfig) (*Game, *recordingSink) {
	sink := &recordingSink{}
	g := New(cfg, sink)
	g.Reset(testRuntime(42))
	g.Step(frame(core.ActionFire))
	sink.reset()
	return g, sink
}

// noSpawns pushes the next spawn signal out of reach.
func noSpawns(g *Game) {
	g.clock.period = 1 << 40
}
