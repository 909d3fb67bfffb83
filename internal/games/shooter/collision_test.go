package shooter

import (
	"testing"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

func testRules() rules {
	return newRules(config.DefaultShooterConfig())
}

// testWorld returns a world with the player parked at the bottom center.
func testWorld(r *rules) World {
	var w World
	w.reset(r)
	return w
}

func collide(w *World, r *rules, sink core.CueSink) bool {
	return commit(w, r, resolve(w), sink)
}

func TestShotKillsEnemyScenario(t *testing.T) {
	r := testRules()
	w := testWorld(&r)
	w.Score = 40
	w.Shots = []Projectile{{Rect: core.NewRect(100, 100, 5, 5), DY: -10}}
	w.Enemies = []Enemy{{Rect: core.NewRect(98, 98, 30, 30)}}
	sink := &recordingSink{}

	if !w.Shots[0].Rect.Intersects(w.Enemies[0].Rect) {
		t.Fatal("shot and enemy should intersect")
	}
	if collide(&w, &r, sink) {
		t.Error("player should not be hit")
	}

	if len(w.Shots) != 0 || len(w.Enemies) != 0 {
		t.Errorf("both should be removed, got %d shots %d enemies", len(w.Shots), len(w.Enemies))
	}
	if w.Score != 50 {
		t.Errorf("score = %d, expected 50", w.Score)
	}
	if sink.count(core.CueEnemyHit) != 1 {
		t.Errorf("expected one enemy hit cue, got %v", sink.cues)
	}
}

func TestCollisionOrder(t *testing.T) {
	enemyAt := func(x, y int) Enemy { return Enemy{Rect: core.NewRect(x, y, 30, 30)} }
	shotAt := func(x, y int) Projectile { return Projectile{Rect: core.NewRect(x, y, 5, 5), DY: -10} }
	bossAt := func(x, y, health int) Boss {
		return Boss{Rect: core.NewRect(x, y, 100, 100), Health: health, Active: true}
	}

	tests := []struct {
		name       string
		setup      func(w *World)
		shots      int
		enemies    int
		score      int
		bossActive bool
		bossHealth int
		playerHit  bool
		cues       map[core.Cue]int
	}{
		{
			name: "one shot destroys only the first enemy it overlaps",
			setup: func(w *World) {
				w.Shots = []Projectile{shotAt(110, 110)}
				w.Enemies = []Enemy{enemyAt(100, 100), enemyAt(105, 105)}
			},
			shots: 0, enemies: 1, score: 10,
			cues: map[core.Cue]int{core.CueEnemyHit: 1},
		},
		{
			name: "second shot on a destroyed enemy survives",
			setup: func(w *World) {
				w.Shots = []Projectile{shotAt(110, 110), shotAt(112, 112)}
				w.Enemies = []Enemy{enemyAt(100, 100)}
			},
			shots: 1, enemies: 0, score: 10,
			cues: map[core.Cue]int{core.CueEnemyHit: 1},
		},
		{
			name: "enemy hit takes priority over boss hit",
			setup: func(w *World) {
				w.Shots = []Projectile{shotAt(110, 110)}
				w.Enemies = []Enemy{enemyAt(100, 100)}
				w.Boss = bossAt(60, 60, 5)
			},
			shots: 0, enemies: 0, score: 10, bossActive: true, bossHealth: 5,
			cues: map[core.Cue]int{core.CueEnemyHit: 1},
		},
		{
			name: "surviving shot hits the boss",
			setup: func(w *World) {
				w.Shots = []Projectile{shotAt(110, 110), shotAt(112, 112)}
				w.Enemies = []Enemy{enemyAt(100, 100)}
				w.Boss = bossAt(60, 60, 5)
			},
			shots: 0, enemies: 0, score: 10, bossActive: true, bossHealth: 4,
			cues: map[core.Cue]int{core.CueEnemyHit: 1, core.CueBossHit: 1},
		},
		{
			name: "shots beyond the killing blow are not consumed",
			setup: func(w *World) {
				w.Shots = []Projectile{shotAt(110, 110), shotAt(120, 120), shotAt(130, 130)}
				w.Boss = bossAt(100, 100, 2)
			},
			shots: 1, enemies: 0, score: 100, bossActive: false,
			cues: map[core.Cue]int{core.CueBossHit: 2},
		},
		{
			name: "enemy destroyed this pass does not hit the player",
			setup: func(w *World) {
				p := w.Player.Rect
				w.Shots = []Projectile{shotAt(p.X+2, p.Y+2)}
				w.Enemies = []Enemy{enemyAt(p.X, p.Y)}
			},
			shots: 0, enemies: 0, score: 10,
			cues: map[core.Cue]int{core.CueEnemyHit: 1},
		},
		{
			name: "boss destroyed this pass does not hit the player",
			setup: func(w *World) {
				p := w.Player.Rect
				w.Shots = []Projectile{shotAt(p.X+2, p.Y+2)}
				w.Boss = bossAt(p.X-20, p.Y-20, 1)
			},
			shots: 0, enemies: 0, score: 100,
			cues: map[core.Cue]int{core.CueBossHit: 1},
		},
		{
			name: "enemy shot hits the player",
			setup: func(w *World) {
				p := w.Player.Rect
				w.EnemyShots = []Projectile{{Rect: core.NewRect(p.X, p.Y, 5, 5), DY: 5}}
			},
			playerHit: true,
			cues:      map[core.Cue]int{},
		},
		{
			name: "boss touching the player",
			setup: func(w *World) {
				p := w.Player.Rect
				w.Boss = bossAt(p.X-90, p.Y-90, 3)
			},
			bossActive: true, bossHealth: 3, playerHit: true,
			cues: map[core.Cue]int{},
		},
		{
			name: "touching edges do not collide",
			setup: func(w *World) {
				p := w.Player.Rect
				w.Enemies = []Enemy{enemyAt(p.X-30, p.Y)}
				w.EnemyShots = []Projectile{{Rect: core.NewRect(p.Right(), p.Y, 5, 5), DY: 5}}
			},
			enemies: 1,
			cues:    map[core.Cue]int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRules()
			w := testWorld(&r)
			tc.setup(&w)
			sink := &recordingSink{}

			hit := collide(&w, &r, sink)

			if hit != tc.playerHit {
				t.Errorf("player hit = %v, expected %v", hit, tc.playerHit)
			}
			if len(w.Shots) != tc.shots {
				t.Errorf("shots = %d, expected %d", len(w.Shots), tc.shots)
			}
			if len(w.Enemies) != tc.enemies {
				t.Errorf("enemies = %d, expected %d", len(w.Enemies), tc.enemies)
			}
			if w.Score != tc.score {
				t.Errorf("score = %d, expected %d", w.Score, tc.score)
			}
			if w.Boss.Active != tc.bossActive {
				t.Errorf("boss active = %v, expected %v", w.Boss.Active, tc.bossActive)
			}
			if tc.bossActive && w.Boss.Health != tc.bossHealth {
				t.Errorf("boss health = %d, expected %d", w.Boss.Health, tc.bossHealth)
			}
			if len(sink.cues) != sumCues(tc.cues) {
				t.Errorf("cues = %v, expected %v", sink.cues, tc.cues)
			}
			for c, n := range tc.cues {
				if sink.count(c) != n {
					t.Errorf("cue %s played %d times, expected %d", c, sink.count(c), n)
				}
			}
		})
	}
}

func sumCues(m map[core.Cue]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

func TestCollisionKeepsOrder(t *testing.T) {
	r := testRules()
	w := testWorld(&r)
	w.Enemies = []Enemy{
		{Rect: core.NewRect(0, 0, 30, 30)},
		{Rect: core.NewRect(200, 0, 30, 30)},
		{Rect: core.NewRect(400, 0, 30, 30)},
	}
	w.Shots = []Projectile{{Rect: core.NewRect(205, 5, 5, 5)}}

	collide(&w, &r, core.NopSink{})

	if len(w.Enemies) != 2 || w.Enemies[0].Rect.X != 0 || w.Enemies[1].Rect.X != 400 {
		t.Errorf("survivors should keep their order, got %+v", w.Enemies)
	}
}
