package shooter

import (
	"github.com/vovakirdan/skyshooter/internal/core"
)

// Player is the avatar at the bottom of the field.
type Player struct {
	Rect core.Rect
}

// Projectile is a shot travelling at a fixed per-tick velocity.
type Projectile struct {
	Rect   core.Rect
	DX, DY int
}

// Move advances the projectile by one tick.
func (p *Projectile) Move() {
	p.Rect = p.Rect.Translate(p.DX, p.DY)
}

// Enemy is a regular descending enemy.
type Enemy struct {
	Rect core.Rect
}

// Boss is the single boss slot. The zero value is an absent boss.
type Boss struct {
	Rect   core.Rect
	Health int
	Active bool
}

// World is the complete mutable simulation state of one session. Each
// system receives it by pointer; nothing else holds entity state.
type World struct {
	Player     Player
	Shots      []Projectile // Player projectiles, moving up
	EnemyShots []Projectile // Enemy projectiles, moving down
	Enemies    []Enemy
	Boss       Boss
	Score      int
}

// reset clears the world to the canonical session start.
func (w *World) reset(cfg *rules) {
	w.Player = Player{Rect: core.NewRect(
		(cfg.fieldW-cfg.playerSize)/2,
		cfg.fieldH-cfg.playerSize-cfg.playerMargin,
		cfg.playerSize, cfg.playerSize,
	)}
	w.Shots = w.Shots[:0]
	w.EnemyShots = w.EnemyShots[:0]
	w.Enemies = w.Enemies[:0]
	w.Boss = Boss{}
	w.Score = 0
}

// compact removes the elements whose index is marked dead, keeping order.
func compact[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
