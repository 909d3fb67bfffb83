package shooter

import (
	"math/rand"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// spawnClock converts simulation ticks into the spawn cadence. Time is kept
// in milliseconds scaled by the tick rate, so the period is exact at any rate.
type spawnClock struct {
	acc    int // Elapsed time, in ms * tickRate
	period int // Spawn interval, in ms * tickRate
}

func newSpawnClock(intervalMS, tickRate int) spawnClock {
	return spawnClock{period: intervalMS * tickRate}
}

// advance moves the clock by one tick and reports how many spawn signals
// fell due.
func (c *spawnClock) advance() int {
	c.acc += 1000
	n := 0
	for c.acc >= c.period {
		c.acc -= c.period
		n++
	}
	return n
}

// spawnResult tells the caller what a spawn signal produced.
type spawnResult int

const (
	spawnedNothing spawnResult = iota
	spawnedEnemy
	spawnedBoss
)

// spawn handles one spawn signal. Regular enemies appear only below the boss
// threshold and while no boss is active; each signal also makes every live
// enemy fire once. At or above the threshold a new boss enters instead.
func spawn(w *World, r *rules, rng *rand.Rand, sink core.CueSink) spawnResult {
	if w.Boss.Active {
		return spawnedNothing
	}

	if w.Score < r.bossThreshold {
		x := rng.Intn(r.fieldW - r.enemySize + 1)
		w.Enemies = append(w.Enemies, Enemy{Rect: core.NewRect(x, 0, r.enemySize, r.enemySize)})

		for _, e := range w.Enemies {
			w.EnemyShots = append(w.EnemyShots, Projectile{
				Rect: core.NewRect(e.Rect.X+r.enemySize/2, e.Rect.Y+r.enemySize, r.shotSize, r.shotSize),
				DY:   r.enemyShotSpeed,
			})
		}
		return spawnedEnemy
	}

	x := rng.Intn(r.fieldW - r.bossSize + 1)
	w.Boss = Boss{
		Rect:   core.NewRect(x, r.bossSpawnY, r.bossSize, r.bossSize),
		Health: r.bossHealth,
		Active: true,
	}
	sink.Play(core.CueBossIntro)
	return spawnedBoss
}
