package dash

import (
	"time"

	"github.com/vovakirdan/delhi-dash/internal/core"
)

// EntitySnapshot is a copy of one live entity.
type EntitySnapshot struct {
	ID       uint64
	Kind     Kind
	Obstacle ObstacleType
	X, Y     float64
	Sprite   core.Box
	Hitbox   core.Box
}

// Snapshot captures the complete session state for rendering, determinism
// testing and the sim trace.
type Snapshot struct {
	Tick            uint64
	Elapsed         time.Duration
	Score           int
	Coins           int
	Distance        float64
	Speed           float64
	Multiplier      float64
	Posture         Posture
	Grounded        bool
	PlayerHitbox    core.Box
	Shield          bool
	ShieldRemaining time.Duration
	Entities        []EntitySnapshot
	IsOver          bool
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	live := s.registry.Entities()
	entities := make([]EntitySnapshot, 0, len(live))
	for _, e := range live {
		entities = append(entities, EntitySnapshot{
			ID:       e.ID,
			Kind:     e.Kind,
			Obstacle: e.Obstacle,
			X:        e.X,
			Y:        e.Y,
			Sprite:   e.SpriteBox(),
			Hitbox:   e.Hitbox(),
		})
	}

	return Snapshot{
		Tick:            s.ticks,
		Elapsed:         s.elapsed,
		Score:           s.progress.Score(),
		Coins:           s.progress.Coins(),
		Distance:        s.progress.Distance(),
		Speed:           s.difficulty.Speed(),
		Multiplier:      s.difficulty.Multiplier(),
		Posture:         s.player.Posture(),
		Grounded:        s.player.Grounded(),
		PlayerHitbox:    s.player.Hitbox(),
		Shield:          s.player.HasShield(),
		ShieldRemaining: s.player.ShieldRemaining(),
		Entities:        entities,
		IsOver:          s.over,
	}
}
