package shooter

import "github.com/vovakirdan/skyshooter/internal/config"

// rules is the flattened, read-only parameter set the systems work from.
type rules struct {
	fieldW, fieldH int

	playerSize   int
	playerSpeed  int
	playerMargin int

	shotSize       int
	shotDX, shotDY int
	enemyShotSpeed int
	fireCooldown   int

	enemySize     int
	enemySpeed    int
	enemyInterval int // Spawn period in milliseconds
	enemyReward   int

	bossSize      int
	bossSpeed     int
	bossHealth    int
	bossSpawnY    int
	bossThreshold int
	bossReward    int
}

func newRules(cfg config.ShooterConfig) rules {
	return rules{
		fieldW: cfg.Field.Width,
		fieldH: cfg.Field.Height,

		playerSize:   cfg.Player.Size,
		playerSpeed:  cfg.Player.Speed,
		playerMargin: cfg.Player.BottomMargin,

		shotSize:       cfg.Projectiles.Size,
		shotDX:         cfg.Projectiles.PlayerVelocity.DX,
		shotDY:         cfg.Projectiles.PlayerVelocity.DY,
		enemyShotSpeed: cfg.Projectiles.EnemySpeed,
		fireCooldown:   cfg.Projectiles.FireCooldownTicks,

		enemySize:     cfg.Enemies.Size,
		enemySpeed:    cfg.Enemies.Speed,
		enemyInterval: cfg.Enemies.SpawnIntervalMS,
		enemyReward:   cfg.Enemies.Reward,

		bossSize:      cfg.Boss.Size,
		bossSpeed:     cfg.Boss.Speed,
		bossHealth:    cfg.Boss.Health,
		bossSpawnY:    cfg.Boss.SpawnY,
		bossThreshold: cfg.Boss.Threshold,
		bossReward:    cfg.Boss.Reward,
	}
}
