package dash

import (
	"time"

	"github.com/vovakirdan/delhi-dash/internal/core"
)

// Autopilot plays a session without a human. It slides as soon as an
// obstacle is about to reach the player: a slide clears every obstacle,
// either by passing under it or by sliding through a pothole.
type Autopilot struct {
	Lookahead time.Duration // Reaction window ahead of the player
}

// NewAutopilot returns an autopilot with the default reaction window.
func NewAutopilot() Autopilot {
	return Autopilot{Lookahead: 100 * time.Millisecond}
}

// Act issues the input for the coming tick and returns it.
func (a Autopilot) Act(s *Session) core.Action {
	if s.over || s.abandoned || s.player.Posture() != Running || !s.player.Grounded() {
		return core.ActionNone
	}

	body := s.player.Hitbox()
	reach := s.difficulty.Velocity() * a.Lookahead.Seconds()

	for _, e := range s.registry.Entities() {
		if e.Kind != KindObstacle {
			continue
		}
		hb := e.Hitbox()
		if hb.Right() <= body.X {
			continue // Already behind
		}
		if hb.X-body.Right() < reach {
			if s.Slide() {
				return core.ActionSlide
			}
			return core.ActionNone
		}
	}
	return core.ActionNone
}
