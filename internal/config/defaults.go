package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default Delhi Dash configuration.
// It mirrors defaults/dash.yaml and is the fallback if the embed cannot be parsed.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		World: WorldConfig{
			Width:       900,
			Height:      500,
			GroundY:     400,
			Gravity:     1800,
			SpawnMargin: 100,
		},
		Player: PlayerConfig{
			X:           150,
			Width:       27,
			Height:      81,
			SlideHeight: 20,
			JumpForce:   -650,
			SlideMs:     600,
			ShieldMs:    5000,
		},
		Speed: SpeedConfig{
			Initial:            8,
			Max:                18,
			IncrementPerSecond: 0.003 * 60,
			VelocityUnit:       50,
		},
		Spawn: SpawnConfig{
			ObstacleMs:         1500,
			CoinMs:             2000,
			PowerUpMs:          15000,
			FirstCoinMs:        1000,
			DoubleSpawnSpeed:   10,
			DoubleSpawnChance:  0.25,
			DoubleSpawnDelayMs: 800,
		},
		Obstacles: ObstacleConfig{
			Rickshaw: ObstacleShape{Width: 140, Height: 110, Bottom: 390, HitboxWRatio: 0.8, HitboxHRatio: 0.7},
			Barrier:  ObstacleShape{Width: 80, Height: 90, Bottom: 395, HitboxWRatio: 0.9, HitboxHRatio: 0.6},
			Pothole:  ObstacleShape{Width: 90, Height: 40, Bottom: 405, HitboxWRatio: 0.6, HitboxHRatio: 0.3},
			ReapX:    -100,
		},
		Coins: CoinConfig{
			MinCount:     3,
			MaxCount:     7,
			Spacing:      50,
			Radius:       12.25,
			LineY:        340,
			ArcAmplitude: 80,
			HighY:        250,
			ReapX:        -50,
		},
		PowerUp: PowerUpConfig{
			Width:           60,
			Height:          60,
			Y:               300,
			BobAmplitude:    20,
			BobHalfPeriodMs: 500,
			ReapX:           -100,
		},
		Scoring: ScoringConfig{
			CoinValue:       10,
			PowerUpValue:    50,
			DistancePerTick: 0.02,
			ScorePerTick:    0.05,
		},
		Session: SessionSettings{
			SummaryDelayMs: 1200,
			HighScoreKey:   "delhiDashHighScore",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDashYAML
}
