// Package config provides YAML-based configuration loading and startup
// validation for the shooter.
package config

// ShooterConfig contains all tunable parameters of the game.
type ShooterConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Boss        BossConfig       `yaml:"boss"`
	Audio       AudioConfig      `yaml:"audio"`
	Input       InputConfig      `yaml:"input"`
}

// FieldConfig defines the logical play field, in field units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Size         int `yaml:"size"`
	Speed        int `yaml:"speed"`         // Units per tick while a move key is held
	BottomMargin int `yaml:"bottom_margin"` // Gap between avatar and bottom edge
}

// Vector is a per-tick velocity.
type Vector struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// ProjectileConfig defines both shot populations.
type ProjectileConfig struct {
	Size           int    `yaml:"size"`
	PlayerVelocity Vector `yaml:"player_velocity"`
	EnemySpeed     int    `yaml:"enemy_speed"`
	// FireCooldownTicks is the minimum number of ticks between two player
	// shots. 0 means one shot per fire press with no limit.
	FireCooldownTicks int `yaml:"fire_cooldown_ticks"`
}

// EnemyConfig defines regular enemies and the spawn cadence.
type EnemyConfig struct {
	Size            int `yaml:"size"`
	Speed           int `yaml:"speed"`
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	Reward          int `yaml:"reward"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	Size      int `yaml:"size"`
	Speed     int `yaml:"speed"`
	Health    int `yaml:"health"`
	SpawnY    int `yaml:"spawn_y"`
	Threshold int `yaml:"threshold"` // Score at which the boss replaces regular spawns
	Reward    int `yaml:"reward"`
}

// AudioConfig defines where sound cues come from.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// AssetDir is searched first for cue files. Empty means use the
	// default search path only.
	AssetDir      string            `yaml:"asset_dir"`
	Volume        float64           `yaml:"volume"` // 0.0 - 1.0
	SampleRate    int               `yaml:"sample_rate"`
	SynthFallback bool              `yaml:"synth_fallback"` // Generate a tone when a file is missing
	Cues          map[string]string `yaml:"cues"`           // Cue name -> file name
}

// InputConfig defines platform input emulation.
type InputConfig struct {
	// HoldMS is how long a move key counts as held after its last press.
	// Terminals report presses and auto-repeat, never releases.
	HoldMS int `yaml:"hold_ms"`
}

// HoldTicks converts HoldMS into ticks at the given rate, at least one.
func (c InputConfig) HoldTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, (c.HoldMS*tickRate+999)/1000)
}
