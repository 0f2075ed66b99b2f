package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the parameters the simulation relies on.
// A bad config is a startup error; the simulation itself never re-checks.
func (c DashConfig) Validate() error {
	var problems []error
	bad := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		bad("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		bad("world.ground_y %v must be inside the world height %v", c.World.GroundY, c.World.Height)
	}
	if c.World.Gravity <= 0 {
		bad("world.gravity must be positive, got %v", c.World.Gravity)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.SlideHeight <= 0 {
		bad("player hitbox must be positive")
	}
	if c.Player.SlideHeight > c.Player.Height {
		bad("player.slide_height %v exceeds player.height %v", c.Player.SlideHeight, c.Player.Height)
	}
	if c.Player.JumpForce >= 0 {
		bad("player.jump_force must be negative (upward), got %v", c.Player.JumpForce)
	}
	if c.Player.SlideMs <= 0 {
		bad("player.slide_ms must be positive, got %d", c.Player.SlideMs)
	}
	if c.Player.ShieldMs <= 0 {
		bad("player.shield_ms must be positive, got %d", c.Player.ShieldMs)
	}

	if c.Speed.Initial <= 0 {
		bad("speed.initial must be positive, got %v", c.Speed.Initial)
	}
	if c.Speed.Max < c.Speed.Initial {
		bad("speed.max %v is below speed.initial %v", c.Speed.Max, c.Speed.Initial)
	}
	if c.Speed.IncrementPerSecond < 0 {
		bad("speed.increment_per_second must not be negative, got %v", c.Speed.IncrementPerSecond)
	}
	if c.Speed.VelocityUnit <= 0 {
		bad("speed.velocity_unit must be positive, got %v", c.Speed.VelocityUnit)
	}

	if c.Spawn.ObstacleMs <= 0 || c.Spawn.CoinMs <= 0 || c.Spawn.PowerUpMs <= 0 {
		bad("spawn intervals must be positive, got obstacle=%d coin=%d power_up=%d",
			c.Spawn.ObstacleMs, c.Spawn.CoinMs, c.Spawn.PowerUpMs)
	}
	if c.Spawn.FirstCoinMs < 0 || c.Spawn.DoubleSpawnDelayMs < 0 {
		bad("spawn delays must not be negative")
	}
	if c.Spawn.DoubleSpawnChance < 0 || c.Spawn.DoubleSpawnChance > 1 {
		bad("spawn.double_spawn_chance must be in [0,1], got %v", c.Spawn.DoubleSpawnChance)
	}

	shapes := []struct {
		name  string
		shape ObstacleShape
	}{
		{"rickshaw", c.Obstacles.Rickshaw},
		{"barrier", c.Obstacles.Barrier},
		{"pothole", c.Obstacles.Pothole},
	}
	for _, o := range shapes {
		name, shape := o.name, o.shape
		if shape.Width <= 0 || shape.Height <= 0 {
			bad("obstacles.%s size must be positive", name)
		}
		if shape.HitboxWRatio <= 0 || shape.HitboxWRatio > 1 || shape.HitboxHRatio <= 0 || shape.HitboxHRatio > 1 {
			bad("obstacles.%s hitbox ratios must be in (0,1]", name)
		}
	}

	if c.Coins.MinCount <= 0 || c.Coins.MaxCount < c.Coins.MinCount {
		bad("coins count range [%d,%d] is invalid", c.Coins.MinCount, c.Coins.MaxCount)
	}
	if c.Coins.Radius <= 0 || c.Coins.Spacing <= 0 {
		bad("coins radius and spacing must be positive")
	}

	if c.PowerUp.Width <= 0 || c.PowerUp.Height <= 0 {
		bad("power_up size must be positive")
	}
	if c.PowerUp.BobHalfPeriodMs <= 0 {
		bad("power_up.bob_half_period_ms must be positive, got %d", c.PowerUp.BobHalfPeriodMs)
	}

	if c.Session.SummaryDelayMs < 0 {
		bad("session.summary_delay_ms must not be negative, got %d", c.Session.SummaryDelayMs)
	}
	if c.Session.HighScoreKey == "" {
		bad("session.high_score_key must not be empty")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
