package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks the spawn preconditions and value ranges once at startup.
// All violations are reported together.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field must be positive, got %dx%d", c.Field.Width, c.Field.Height)

	check(c.Player.Size > 0, "player.size must be positive, got %d", c.Player.Size)
	check(c.Player.Speed > 0, "player.speed must be positive, got %d", c.Player.Speed)
	check(c.Player.BottomMargin >= 0, "player.bottom_margin must not be negative, got %d", c.Player.BottomMargin)
	check(c.Player.Size <= c.Field.Width, "player.size %d exceeds field width %d", c.Player.Size, c.Field.Width)
	check(c.Player.Size+c.Player.BottomMargin <= c.Field.Height,
		"player (size %d + margin %d) does not fit field height %d",
		c.Player.Size, c.Player.BottomMargin, c.Field.Height)

	check(c.Projectiles.Size > 0, "projectiles.size must be positive, got %d", c.Projectiles.Size)
	check(c.Projectiles.Size <= c.Player.Size,
		"projectiles.size %d exceeds player.size %d", c.Projectiles.Size, c.Player.Size)
	check(c.Projectiles.PlayerVelocity.DY < 0,
		"projectiles.player_velocity.dy must point up (negative), got %d", c.Projectiles.PlayerVelocity.DY)
	check(c.Projectiles.EnemySpeed > 0, "projectiles.enemy_speed must be positive, got %d", c.Projectiles.EnemySpeed)
	check(c.Projectiles.FireCooldownTicks >= 0,
		"projectiles.fire_cooldown_ticks must not be negative, got %d", c.Projectiles.FireCooldownTicks)

	check(c.Enemies.Size > 0, "enemies.size must be positive, got %d", c.Enemies.Size)
	check(c.Enemies.Size <= c.Field.Width, "enemies.size %d exceeds field width %d", c.Enemies.Size, c.Field.Width)
	check(c.Enemies.Speed > 0, "enemies.speed must be positive, got %d", c.Enemies.Speed)
	check(c.Enemies.SpawnIntervalMS > 0, "enemies.spawn_interval_ms must be positive, got %d", c.Enemies.SpawnIntervalMS)
	check(c.Enemies.Reward > 0, "enemies.reward must be positive, got %d", c.Enemies.Reward)

	check(c.Boss.Size > 0, "boss.size must be positive, got %d", c.Boss.Size)
	check(c.Boss.Size <= c.Field.Width, "boss.size %d exceeds field width %d", c.Boss.Size, c.Field.Width)
	check(c.Boss.Speed > 0, "boss.speed must be positive, got %d", c.Boss.Speed)
	check(c.Boss.Health > 0, "boss.health must be positive, got %d", c.Boss.Health)
	check(c.Boss.Threshold > 0, "boss.threshold must be positive, got %d", c.Boss.Threshold)
	check(c.Boss.Reward > 0, "boss.reward must be positive, got %d", c.Boss.Reward)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)

	check(c.Input.HoldMS >= 0, "input.hold_ms must not be negative, got %d", c.Input.HoldMS)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
