package config

import (
	"math"
	"time"
)

// DifficultyManager owns the current speed and ramps it toward the cap.
// Every moving entity derives its velocity from Speed(), so a change is
// observed by all of them on the same tick.
type DifficultyManager struct {
	cfg   SpeedConfig
	speed float64
}

// NewDifficultyManager creates a difficulty manager starting at the initial speed.
func NewDifficultyManager(cfg SpeedConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		speed: cfg.Initial,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.IncrementPerSecond > 0
}

// Advance raises the speed by the per-second increment scaled to delta,
// clamped to the maximum. Speed never decreases.
func (d *DifficultyManager) Advance(delta time.Duration) float64 {
	if delta <= 0 || !d.IsEnabled() {
		return d.speed
	}
	d.speed = clampF(d.speed+d.cfg.IncrementPerSecond*delta.Seconds(), d.cfg.Initial, d.cfg.Max)
	return d.speed
}

// Speed returns the current speed scalar.
func (d *DifficultyManager) Speed() float64 {
	return d.speed
}

// Velocity returns the current horizontal velocity in world units per second.
func (d *DifficultyManager) Velocity() float64 {
	return d.speed * d.cfg.VelocityUnit
}

// Multiplier returns speed relative to the initial speed (1.0x at start).
func (d *DifficultyManager) Multiplier() float64 {
	if d.cfg.Initial <= 0 {
		return 1
	}
	return d.speed / d.cfg.Initial
}

// AtMax returns true once the speed has reached its cap.
func (d *DifficultyManager) AtMax() bool {
	return d.speed >= d.cfg.Max
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
