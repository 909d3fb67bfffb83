// Package shooter implements the arcade shooter simulation: a player at the
// bottom of a fixed field shooting descending enemies and a periodic boss.
package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// Mode is the top-level game mode.
type Mode int

const (
	ModeStart    Mode = iota // Title screen, waiting for fire
	ModePlaying              // Session in progress
	ModeGameOver             // Player struck, waiting for restart
)

// String returns the mode name used in snapshots and logs.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game implements the shooter game logic. It is driven one tick at a time
// by Step and owns all simulation state; it is not safe for concurrent use.
type Game struct {
	rules   rules
	sink    core.CueSink
	runtime core.RuntimeConfig
	rng     *rand.Rand

	world    World
	mode     Mode
	paused   bool
	clock    spawnClock
	cooldown int // Ticks until the player may fire again

	tickCount int
}

// New creates a game from a validated configuration. A nil sink plays
// nothing.
func New(cfg config.ShooterConfig, sink core.CueSink) *Game {
	if sink == nil {
		sink = core.NopSink{}
	}
	return &Game{
		rules: newRules(cfg),
		sink:  sink,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Shooter"
}

// Reset initializes the game and returns it to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	g.tickCount = 0
	g.mode = ModeStart
	g.startSession()
}

// startSession puts the world into its canonical initial state.
func (g *Game) startSession() {
	g.world.reset(&g.rules)
	g.paused = false
	g.cooldown = 0
	g.clock = newSpawnClock(g.rules.enemyInterval, g.runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	switch g.mode {
	case ModeStart:
		if in.Has(core.ActionFire) {
			g.startSession()
			g.mode = ModePlaying
		}
	case ModeGameOver:
		// Restart only re-arms the title screen; the next start resets
		if in.Has(core.ActionRestart) {
			g.mode = ModeStart
		}
	case ModePlaying:
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

// stepPlaying runs input, spawner, motion and collision for one tick.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.handleInput(in)

	for range g.clock.advance() {
		spawn(&g.world, &g.rules, g.rng, g.sink)
	}

	move(&g.world, &g.rules)

	h := resolve(&g.world)
	if commit(&g.world, &g.rules, h, g.sink) {
		g.mode = ModeGameOver
		g.sink.Play(core.CueGameOver)
	}
}

// handleInput moves the player and fires.
func (g *Game) handleInput(in core.InputFrame) {
	p := &g.world.Player.Rect
	if in.Has(core.ActionLeft) {
		p.X -= g.rules.playerSpeed
	}
	if in.Has(core.ActionRight) {
		p.X += g.rules.playerSpeed
	}
	p.X = core.Clamp(p.X, 0, g.rules.fieldW-p.W)

	if g.cooldown > 0 {
		g.cooldown--
	}
	if in.Has(core.ActionFire) && g.cooldown == 0 {
		g.fire()
		g.cooldown = g.rules.fireCooldown
	}
}

// fire spawns a player shot at the top center of the avatar.
func (g *Game) fire() {
	p := g.world.Player.Rect
	size := g.rules.shotSize
	g.world.Shots = append(g.world.Shots, Projectile{
		Rect: core.NewRect(p.X+p.W/2-size/2, p.Y, size, size),
		DX:   g.rules.shotDX,
		DY:   g.rules.shotDY,
	})
	g.sink.Play(core.CueShot)
}

// State returns the current coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.paused,
	}
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Field returns the play field size in field units.
func (g *Game) Field() (w, h int) {
	return g.rules.fieldW, g.rules.fieldH
}
