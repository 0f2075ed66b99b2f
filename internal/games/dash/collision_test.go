package dash

import (
	"testing"
)

// runApproach ticks until the obstacle has passed the player or the run
// ends. hold keeps the player sliding for the whole approach.
func runApproach(s *Session, o *Entity, hold bool) (overlapped bool) {
	for i := 0; i < 2000 && !s.State().IsOver && o.X > 0; i++ {
		if hold {
			s.Slide()
		}
		s.Tick(step)
		if o.Alive() && o.Overlaps(s.player.Hitbox()) {
			overlapped = true
		}
	}
	return overlapped
}

func TestObstaclesApproachingFromSpawnLine(t *testing.T) {
	tests := []struct {
		name    string
		typ     ObstacleType
		sliding bool
		over    bool
	}{
		{"barrier hits standing player", Barrier, false, true},
		{"rickshaw hits standing player", Rickshaw, false, true},
		{"pothole hits standing player", Pothole, false, true},
		{"slide under barrier", Barrier, true, false},
		{"slide under rickshaw", Rickshaw, true, false},
		{"slide through pothole", Pothole, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietSession(Options{})
			o := newObstacle(tt.typ, s.cfg.World.SpawnX(), s.cfg.Obstacles)
			s.registry.Add(o)

			overlapped := runApproach(s, o, tt.sliding)

			if got := s.State().IsOver; got != tt.over {
				t.Fatalf("IsOver = %v with obstacle at X=%.1f, expected %v", got, o.X, tt.over)
			}
			if tt.over && o.X < s.cfg.Player.X-o.Hitbox().W {
				t.Errorf("game ended at X=%.1f, after the obstacle had already passed", o.X)
			}
			if !tt.over && !o.Alive() {
				t.Error("obstacle was destroyed while passing a sliding player")
			}
			// Only the pothole still overlaps the low hitbox
			if tt.sliding && overlapped != (tt.typ == Pothole) {
				t.Errorf("overlapped sliding hitbox = %v, expected %v", overlapped, tt.typ == Pothole)
			}
		})
	}
}

func TestJumpCollectsLineCoinsMidArc(t *testing.T) {
	s := newQuietSession(Options{})
	for i := 1; i <= 8; i++ {
		s.registry.Add(newCoin(s.cfg.Player.X+50*float64(i), s.cfg.Coins.LineY, s.cfg.Coins))
	}
	if !s.Jump() {
		t.Fatal("Jump() refused while grounded")
	}

	airborne := 0
	for i := 0; i < 200 && !s.player.Grounded(); i++ {
		before := s.State().Coins
		s.Tick(step)
		if s.State().Coins > before && !s.player.Grounded() {
			airborne += s.State().Coins - before
		}

		// Every coin touching the player must have been taken this tick
		hitbox := s.player.Hitbox()
		for _, e := range s.registry.Entities() {
			if e.Kind == KindCoin && e.Overlaps(hitbox) {
				t.Fatalf("tick %d: coin at (%.1f, %.1f) overlaps player %+v but was not collected", i, e.X, e.Y, hitbox)
			}
		}
	}

	if airborne == 0 {
		t.Error("no coin collected while airborne")
	}
}
