package dash

import (
	"testing"
	"time"

	"github.com/vovakirdan/delhi-dash/internal/config"
)

func newTestPlayer() (*Player, *eventQueue) {
	events := &eventQueue{}
	return NewPlayer(config.DefaultDashConfig(), events), events
}

func TestJumpIsIdempotentWhileAirborne(t *testing.T) {
	p, _ := newTestPlayer()
	if !p.Jump() {
		t.Fatal("Jump() refused while grounded")
	}
	p.Move(50 * time.Millisecond)

	vy := p.Velocity()
	if p.Jump() {
		t.Error("second Jump() accepted while airborne")
	}
	if p.Velocity() != vy {
		t.Errorf("Velocity() = %v after refused jump, expected %v", p.Velocity(), vy)
	}
	if p.Posture() != Jumping {
		t.Errorf("Posture() = %v, expected jumping", p.Posture())
	}
}

func TestJumpArcLandsAndEmitsDust(t *testing.T) {
	p, events := newTestPlayer()
	p.Jump()
	if got := events.drain(); len(got) != 1 {
		t.Fatalf("jump emitted %d events, expected 1", len(got))
	}

	peak := p.Feet()
	landed := false
	for i := 0; i < 200; i++ {
		p.Move(10 * time.Millisecond)
		if p.Feet() < peak {
			peak = p.Feet()
		}
		if p.Grounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
	if p.Posture() != Running {
		t.Errorf("Posture() = %v after landing, expected running", p.Posture())
	}
	if p.Feet() != 400 {
		t.Errorf("Feet() = %v after landing, expected ground 400", p.Feet())
	}
	// v²/2g = 650²/3600 ≈ 117 units of lift
	if lift := 400 - peak; lift < 100 || lift > 125 {
		t.Errorf("jump height = %v, expected about 117", lift)
	}

	var landing bool
	for _, e := range events.drain() {
		if d, ok := e.(DustEvent); ok && d.Landing {
			landing = true
		}
	}
	if !landing {
		t.Error("no landing DustEvent emitted")
	}
}

func TestSlideRevertsAfterDuration(t *testing.T) {
	p, _ := newTestPlayer()
	if !p.Slide() {
		t.Fatal("Slide() refused while running")
	}
	for i := 0; i < 59; i++ {
		p.Advance(10 * time.Millisecond)
	}
	if p.Posture() != Sliding {
		t.Fatalf("Posture() = %v at 590ms, expected sliding", p.Posture())
	}
	p.Advance(10 * time.Millisecond)
	if p.Posture() != Running {
		t.Errorf("Posture() = %v at 600ms, expected running", p.Posture())
	}
}

func TestSlideRules(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(p *Player)
		expected bool
	}{
		{"running", func(p *Player) {}, true},
		{"airborne", func(p *Player) { p.Jump() }, false},
		{"already sliding", func(p *Player) { p.Slide() }, false},
		{"frozen", func(p *Player) { p.Freeze() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer()
			tt.setup(p)
			if got := p.Slide(); got != tt.expected {
				t.Errorf("Slide() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestJumpCancelsSlide(t *testing.T) {
	p, _ := newTestPlayer()
	p.Slide()
	if !p.Jump() {
		t.Fatal("Jump() refused while sliding")
	}
	p.Advance(time.Second)
	if p.Posture() != Jumping {
		t.Errorf("Posture() = %v, expected jumping", p.Posture())
	}
}

func TestFrozenSlideNeverReverts(t *testing.T) {
	p, _ := newTestPlayer()
	p.Slide()
	p.Freeze()
	p.Advance(2 * time.Second)
	if p.Posture() != Sliding {
		t.Errorf("Posture() = %v after freeze, expected sliding", p.Posture())
	}
}

func TestSlideHeldThroughGameOver(t *testing.T) {
	cfg := quietConfig()
	// Lower the barrier so it reaches a sliding player
	cfg.Obstacles.Barrier.Bottom = 420
	s := NewSession(cfg, Options{})

	s.Slide()
	s.registry.Add(newObstacle(Barrier, 150, cfg.Obstacles))
	s.Tick(step)
	if !s.State().IsOver {
		t.Fatal("expected game over")
	}

	for i := 0; i < 100; i++ {
		s.Tick(step)
	}
	if s.player.Posture() != Sliding {
		t.Errorf("Posture() = %v after game over, expected sliding", s.player.Posture())
	}
}

func TestPlayerHitboxFollowsPosture(t *testing.T) {
	p, _ := newTestPlayer()

	hb := p.Hitbox()
	if hb.H != 81 || hb.Bottom() != 400 || hb.X != 136.5 {
		t.Errorf("standing Hitbox() = %+v", hb)
	}

	p.Slide()
	hb = p.Hitbox()
	if hb.H != 20 || hb.Bottom() != 400 {
		t.Errorf("sliding Hitbox() = %+v, expected height 20 on the ground", hb)
	}
}

func TestShieldRestartsRatherThanStacks(t *testing.T) {
	p, _ := newTestPlayer()
	p.GrantShield()
	p.Advance(2 * time.Second)
	if got := p.ShieldRemaining(); got != 3*time.Second {
		t.Fatalf("ShieldRemaining() = %v, expected 3s", got)
	}

	p.GrantShield()
	if got := p.ShieldRemaining(); got != 5*time.Second {
		t.Errorf("ShieldRemaining() = %v after regrant, expected 5s", got)
	}

	p.ConsumeShield()
	if p.HasShield() || p.ShieldRemaining() != 0 {
		t.Error("ConsumeShield() left the shield active")
	}
}
