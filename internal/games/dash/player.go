package dash

import (
	"time"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/core"
	"github.com/vovakirdan/delhi-dash/internal/sched"
)

// Posture is the player's locomotion state.
type Posture int

const (
	Running Posture = iota
	Jumping
	Sliding
)

// String returns the posture name.
func (p Posture) String() string {
	switch p {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Sliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Player is the runner's state machine: posture, vertical motion and shield.
type Player struct {
	cfg     config.PlayerConfig
	groundY float64
	gravity float64

	y        float64 // Feet position; groundY when grounded
	vy       float64 // Vertical velocity, negative = up
	posture  Posture
	grounded bool

	shield          bool
	shieldRemaining time.Duration

	frozen    bool
	timers    *sched.Scheduler
	slideTask *sched.Task
	events    *eventQueue
}

// NewPlayer creates a grounded, running player.
func NewPlayer(cfg config.DashConfig, events *eventQueue) *Player {
	return &Player{
		cfg:      cfg.Player,
		groundY:  cfg.World.GroundY,
		gravity:  cfg.World.Gravity,
		y:        cfg.World.GroundY,
		posture:  Running,
		grounded: true,
		timers:   sched.New(),
		events:   events,
	}
}

// Jump applies the jump impulse. It has no effect while airborne, while
// already jumping, or after game-over. Jumping out of a slide ends the slide.
func (p *Player) Jump() bool {
	if p.frozen || !p.grounded || p.posture == Jumping {
		return false
	}
	if p.posture == Sliding {
		p.slideTask.Cancel()
		p.slideTask = nil
	}
	p.vy = p.cfg.JumpForce
	p.posture = Jumping
	p.grounded = false
	p.events.emit(DustEvent{X: p.cfg.X, Y: p.y})
	return true
}

// Slide lowers the hitbox for the configured duration. It has no effect
// while airborne, while already sliding, or after game-over.
func (p *Player) Slide() bool {
	if p.frozen || !p.grounded || p.posture != Running {
		return false
	}
	p.posture = Sliding
	p.slideTask = p.timers.After(p.cfg.SlideDuration(), p.endSlide)
	return true
}

func (p *Player) endSlide() {
	p.slideTask = nil
	if p.frozen {
		return
	}
	p.posture = Running
}

// Move integrates gravity over dt and performs the ground-contact test.
func (p *Player) Move(dt time.Duration) {
	if p.frozen || p.grounded {
		return
	}
	secs := dt.Seconds()
	p.vy += p.gravity * secs
	p.y += p.vy * secs

	if p.y >= p.groundY {
		p.y = p.groundY
		p.vy = 0
		p.grounded = true
		if p.posture == Jumping {
			p.posture = Running
		}
		p.events.emit(DustEvent{X: p.cfg.X, Y: p.y, Landing: true})
	}
}

// Advance runs the slide timer and the shield countdown.
func (p *Player) Advance(dt time.Duration) {
	if p.frozen {
		return
	}
	p.timers.Advance(dt)

	if p.shield {
		p.shieldRemaining -= dt
		if p.shieldRemaining <= 0 {
			p.shield = false
			p.shieldRemaining = 0
			p.events.emit(ShieldExpiredEvent{})
		}
	}
}

// GrantShield activates the shield or restarts its countdown.
func (p *Player) GrantShield() {
	p.shield = true
	p.shieldRemaining = p.cfg.ShieldDuration()
}

// ConsumeShield spends the shield on one obstacle.
func (p *Player) ConsumeShield() {
	p.shield = false
	p.shieldRemaining = 0
}

// Freeze stops the player for good. A slide in progress is never restored.
func (p *Player) Freeze() {
	p.frozen = true
	p.vy = 0
	p.timers.Stop()
	p.slideTask = nil
}

// Hitbox returns the current collision box, bottom-aligned with the feet.
func (p *Player) Hitbox() core.Box {
	h := p.cfg.Height
	if p.posture == Sliding {
		h = p.cfg.SlideHeight
	}
	return core.BoxFromBottomCenter(p.cfg.X, p.y, p.cfg.Width, h)
}

// Posture returns the current locomotion state.
func (p *Player) Posture() Posture { return p.posture }

// Grounded returns the result of the last ground-contact test.
func (p *Player) Grounded() bool { return p.grounded }

// HasShield returns whether the shield is active.
func (p *Player) HasShield() bool { return p.shield }

// ShieldRemaining returns the time left on the shield.
func (p *Player) ShieldRemaining() time.Duration { return p.shieldRemaining }

// Velocity returns the vertical velocity in units per second.
func (p *Player) Velocity() float64 { return p.vy }

// Feet returns the y-coordinate of the player's feet.
func (p *Player) Feet() float64 { return p.y }
