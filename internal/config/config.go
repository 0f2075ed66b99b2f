// Package config provides YAML-based game configuration loading and
// the speed ramp (difficulty) controller for Delhi Dash.
package config

import "time"

// DashConfig contains all configuration for the runner simulation.
type DashConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Speed     SpeedConfig     `yaml:"speed"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Coins     CoinConfig      `yaml:"coins"`
	PowerUp   PowerUpConfig   `yaml:"power_up"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Session   SessionSettings `yaml:"session"`
}

// WorldConfig defines the simulated playfield in world units.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundY     float64 `yaml:"ground_y"`
	Gravity     float64 `yaml:"gravity"`      // units/s²
	SpawnMargin float64 `yaml:"spawn_margin"` // entities appear at Width + SpawnMargin
}

// SpawnX returns the x-coordinate where new entities appear.
func (w WorldConfig) SpawnX() float64 {
	return w.Width + w.SpawnMargin
}

// PlayerConfig defines the runner's body and movement.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SlideHeight float64 `yaml:"slide_height"`
	JumpForce   float64 `yaml:"jump_force"` // units/s, negative = up
	SlideMs     int     `yaml:"slide_ms"`
	ShieldMs    int     `yaml:"shield_ms"`
}

// SlideDuration returns how long a slide lasts.
func (p PlayerConfig) SlideDuration() time.Duration {
	return ms(p.SlideMs)
}

// ShieldDuration returns how long a collected shield lasts.
func (p PlayerConfig) ShieldDuration() time.Duration {
	return ms(p.ShieldMs)
}

// SpeedConfig defines the difficulty ramp.
type SpeedConfig struct {
	Initial            float64 `yaml:"initial"`
	Max                float64 `yaml:"max"`
	IncrementPerSecond float64 `yaml:"increment_per_second"`
	VelocityUnit       float64 `yaml:"velocity_unit"` // world units per second per speed point
}

// SpawnConfig defines the three spawn timers.
type SpawnConfig struct {
	ObstacleMs         int     `yaml:"obstacle_ms"`
	CoinMs             int     `yaml:"coin_ms"`
	PowerUpMs          int     `yaml:"power_up_ms"`
	FirstCoinMs        int     `yaml:"first_coin_ms"`
	DoubleSpawnSpeed   float64 `yaml:"double_spawn_speed"`
	DoubleSpawnChance  float64 `yaml:"double_spawn_chance"`
	DoubleSpawnDelayMs int     `yaml:"double_spawn_delay_ms"`
}

// ObstacleInterval returns the obstacle spawn period.
func (s SpawnConfig) ObstacleInterval() time.Duration { return ms(s.ObstacleMs) }

// CoinInterval returns the coin run spawn period.
func (s SpawnConfig) CoinInterval() time.Duration { return ms(s.CoinMs) }

// PowerUpInterval returns the power-up spawn period.
func (s SpawnConfig) PowerUpInterval() time.Duration { return ms(s.PowerUpMs) }

// FirstCoinDelay returns the delay of the opening coin run.
func (s SpawnConfig) FirstCoinDelay() time.Duration { return ms(s.FirstCoinMs) }

// DoubleSpawnDelay returns the delay of a paired obstacle.
func (s SpawnConfig) DoubleSpawnDelay() time.Duration { return ms(s.DoubleSpawnDelayMs) }

// ObstacleShape describes one obstacle type. The sprite box is bottom-aligned
// at Bottom; the hitbox is centered inside it, scaled by the ratios.
type ObstacleShape struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Bottom       float64 `yaml:"bottom"`
	HitboxWRatio float64 `yaml:"hitbox_w_ratio"`
	HitboxHRatio float64 `yaml:"hitbox_h_ratio"`
}

// ObstacleConfig defines obstacle types and their reap line.
type ObstacleConfig struct {
	Rickshaw ObstacleShape `yaml:"rickshaw"`
	Barrier  ObstacleShape `yaml:"barrier"`
	Pothole  ObstacleShape `yaml:"pothole"`
	ReapX    float64       `yaml:"reap_x"`
}

// CoinConfig defines coin runs.
type CoinConfig struct {
	MinCount     int     `yaml:"min_count"`
	MaxCount     int     `yaml:"max_count"`
	Spacing      float64 `yaml:"spacing"`
	Radius       float64 `yaml:"radius"`
	LineY        float64 `yaml:"line_y"`
	ArcAmplitude float64 `yaml:"arc_amplitude"`
	HighY        float64 `yaml:"high_y"`
	ReapX        float64 `yaml:"reap_x"`
}

// PowerUpConfig defines the shield pickup.
type PowerUpConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Y               float64 `yaml:"y"` // Center line before bobbing
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	BobHalfPeriodMs int     `yaml:"bob_half_period_ms"`
	ReapX           float64 `yaml:"reap_x"`
}

// BobHalfPeriod returns the time to rise from base to peak.
func (p PowerUpConfig) BobHalfPeriod() time.Duration { return ms(p.BobHalfPeriodMs) }

// ScoringConfig defines rewards and per-tick accrual.
type ScoringConfig struct {
	CoinValue       int     `yaml:"coin_value"`
	PowerUpValue    int     `yaml:"power_up_value"`
	DistancePerTick float64 `yaml:"distance_per_tick"` // multiplied by speed
	ScorePerTick    float64 `yaml:"score_per_tick"`    // multiplied by speed, floored
}

// SessionSettings defines end-of-run behavior.
type SessionSettings struct {
	SummaryDelayMs int    `yaml:"summary_delay_ms"`
	HighScoreKey   string `yaml:"high_score_key"`
}

// SummaryDelay returns the presentation delay before the summary is emitted.
func (s SessionSettings) SummaryDelay() time.Duration { return ms(s.SummaryDelayMs) }

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
