package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  1366,
			Height: 768,
		},
		Player: PlayerConfig{
			Size:         50,
			Speed:        5,
			BottomMargin: 10,
		},
		Projectiles: ProjectileConfig{
			Size:              5,
			PlayerVelocity:    Vector{DX: 0, DY: -10},
			EnemySpeed:        5,
			FireCooldownTicks: 0,
		},
		Enemies: EnemyConfig{
			Size:            30,
			Speed:           2,
			SpawnIntervalMS: 1000,
			Reward:          10,
		},
		Boss: BossConfig{
			Size:      100,
			Speed:     1,
			Health:    20,
			SpawnY:    -100,
			Threshold: 500,
			Reward:    100,
		},
		Audio: AudioConfig{
			Enabled:       true,
			Volume:        0.5,
			SampleRate:    44100,
			SynthFallback: true,
			Cues: map[string]string{
				"shot":       "bullet.wav",
				"enemy_hit":  "enemy_hit.wav",
				"boss_hit":   "boss_hit.wav",
				"boss_intro": "boss_intro.wav",
				"game_over":  "game_over.wav",
			},
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML, as shipped.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
