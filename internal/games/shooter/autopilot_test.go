package shooter

import (
	"testing"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

func TestAutopilotStartsAndFires(t *testing.T) {
	sink := &recordingSink{}
	g := New(config.DefaultShooterConfig(), sink)
	g.Reset(testRuntime(5))
	pilot := &Autopilot{FireEvery: 10}

	g.Step(pilot.Next(g))
	if g.Mode() != ModePlaying {
		t.Fatalf("autopilot should start the game, mode = %s", g.Mode())
	}

	for range 100 {
		g.Step(pilot.Next(g))
	}
	if g.Mode() == ModePlaying && sink.count(core.CueShot) != 10 {
		t.Errorf("expected 10 shots in 100 ticks, got %d", sink.count(core.CueShot))
	}
}

func TestAutopilotSteers(t *testing.T) {
	g, _ := newPlaying(config.DefaultShooterConfig())
	pilot := &Autopilot{}

	g.world.Enemies = []Enemy{
		{Rect: core.NewRect(100, 10, 30, 30)},
		{Rect: core.NewRect(1200, 200, 30, 30)}, // lowest
	}
	if in := pilot.Next(g); !in.Has(core.ActionRight) || in.Has(core.ActionLeft) {
		t.Errorf("should steer right toward the lowest enemy, got %v", in.Actions)
	}

	g.world.Boss = Boss{Rect: core.NewRect(0, -50, 100, 100), Health: 20, Active: true}
	if in := pilot.Next(g); !in.Has(core.ActionLeft) {
		t.Errorf("should steer left toward the boss, got %v", in.Actions)
	}

	g.world.Boss = Boss{}
	g.world.Enemies = []Enemy{{Rect: core.NewRect(668, 10, 30, 30)}}
	if in := pilot.Next(g); in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		t.Errorf("should hold still under the target, got %v", in.Actions)
	}
}

func TestAutopilotRestart(t *testing.T) {
	g, _ := newPlaying(config.DefaultShooterConfig())
	g.world.Enemies = []Enemy{{Rect: g.world.Player.Rect}}
	g.Step(frame())

	if in := (&Autopilot{}).Next(g); len(in.Actions) != 0 {
		t.Errorf("without Restart the autopilot should idle after game over, got %v", in.Actions)
	}
	if in := (&Autopilot{Restart: true}).Next(g); !in.Has(core.ActionRestart) {
		t.Errorf("expected restart, got %v", in.Actions)
	}
}
