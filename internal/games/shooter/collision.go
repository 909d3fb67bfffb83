package shooter

import "github.com/vovakirdan/skyshooter/internal/core"

// hits is the outcome of one collision pass, computed from the world as it
// stood after motion. Nothing is mutated until commit.
type hits struct {
	shotGone   []bool // Player shots consumed, by index
	enemyDead  []bool // Enemies destroyed, by index
	enemyKills int
	bossHits   int
	bossKilled bool
	playerHit  bool
}

// resolve evaluates all collisions in fixed order:
//  1. player shots against enemies (one enemy per shot)
//  2. surviving player shots against the boss
//  3. enemy shots against the player
//  4. surviving enemies against the player
//  5. the boss, unless just destroyed, against the player
func resolve(w *World) hits {
	h := hits{
		shotGone:  make([]bool, len(w.Shots)),
		enemyDead: make([]bool, len(w.Enemies)),
	}

	for i, s := range w.Shots {
		for j, e := range w.Enemies {
			if h.enemyDead[j] || !s.Rect.Intersects(e.Rect) {
				continue
			}
			h.shotGone[i] = true
			h.enemyDead[j] = true
			h.enemyKills++
			break
		}
	}

	if w.Boss.Active {
		health := w.Boss.Health
		for i, s := range w.Shots {
			if health <= 0 {
				break
			}
			if h.shotGone[i] || !s.Rect.Intersects(w.Boss.Rect) {
				continue
			}
			h.shotGone[i] = true
			h.bossHits++
			health--
		}
		h.bossKilled = health <= 0
	}

	player := w.Player.Rect
	for _, s := range w.EnemyShots {
		if s.Rect.Intersects(player) {
			h.playerHit = true
			break
		}
	}
	for j, e := range w.Enemies {
		if !h.enemyDead[j] && e.Rect.Intersects(player) {
			h.playerHit = true
			break
		}
	}
	if w.Boss.Active && !h.bossKilled && w.Boss.Rect.Intersects(player) {
		h.playerHit = true
	}

	return h
}

// commit applies a collision outcome: removals, score, boss health and the
// audio cues, in pass order. It reports whether the player was struck.
func commit(w *World, r *rules, h hits, sink core.CueSink) bool {
	w.Shots = compact(w.Shots, h.shotGone)
	w.Enemies = compact(w.Enemies, h.enemyDead)

	for range h.enemyKills {
		w.Score += r.enemyReward
		sink.Play(core.CueEnemyHit)
	}

	for range h.bossHits {
		w.Boss.Health--
		sink.Play(core.CueBossHit)
	}
	if h.bossKilled {
		w.Boss = Boss{}
		w.Score += r.bossReward
	}

	return h.playerHit
}
