package dash

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/core"
)

// Kind identifies which variant an Entity is.
type Kind int

const (
	KindObstacle Kind = iota
	KindCoin
	KindPowerUp
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// ObstacleType selects the shape and slide rule of an obstacle.
type ObstacleType int

const (
	Rickshaw ObstacleType = iota
	Barrier
	Pothole
)

// obstacleTypes lists every type in spawn-selection order.
var obstacleTypes = [...]ObstacleType{Rickshaw, Barrier, Pothole}

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case Rickshaw:
		return "rickshaw"
	case Barrier:
		return "barrier"
	case Pothole:
		return "pothole"
	default:
		return "unknown"
	}
}

// SlideThrough reports whether a sliding player passes this obstacle unharmed.
func (t ObstacleType) SlideThrough() bool {
	return t == Pothole
}

// Shape returns the configured shape for this obstacle type.
func (t ObstacleType) Shape(cfg config.ObstacleConfig) config.ObstacleShape {
	switch t {
	case Barrier:
		return cfg.Barrier
	case Pothole:
		return cfg.Pothole
	default:
		return cfg.Rickshaw
	}
}

// CoinPattern is the spatial arrangement of a coin run.
type CoinPattern int

const (
	PatternLine CoinPattern = iota
	PatternArc
	PatternHigh
)

// String returns the pattern name.
func (p CoinPattern) String() string {
	switch p {
	case PatternLine:
		return "line"
	case PatternArc:
		return "arc"
	case PatternHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Entity is a transient obstacle, coin or power-up owned by the registry.
// X is the horizontal center. For obstacles Y is the bottom of the sprite box;
// for coins and power-ups it is the center.
type Entity struct {
	ID       uint64
	Kind     Kind
	Obstacle ObstacleType // KindObstacle only
	X, Y     float64

	alive bool
	shape resolv.IShape

	// Obstacle sprite box and hitbox scale
	spriteW, spriteH float64
	hitW, hitH       float64

	// Coin radius
	radius float64

	// Power-up bob
	baseY    float64
	bobAmp   float64
	bobHalf  time.Duration
	bobClock time.Duration
	boxW     float64
	boxH     float64
}

// Alive returns false once the entity was consumed or reaped.
func (e *Entity) Alive() bool {
	return e.alive
}

// SpriteBox returns the full visual extent of the entity.
func (e *Entity) SpriteBox() core.Box {
	switch e.Kind {
	case KindObstacle:
		return core.BoxFromBottomCenter(e.X, e.Y, e.spriteW, e.spriteH)
	case KindCoin:
		return e.Circle().Bounds()
	default:
		return core.BoxFromCenter(e.X, e.Y, e.boxW, e.boxH)
	}
}

// Hitbox returns the rectangular collision area. Coins report their bounds;
// use Circle for their exact shape.
func (e *Entity) Hitbox() core.Box {
	switch e.Kind {
	case KindObstacle:
		sprite := e.SpriteBox()
		cx, cy := sprite.Center()
		return core.BoxFromCenter(cx, cy, e.hitW, e.hitH)
	case KindCoin:
		return e.Circle().Bounds()
	default:
		return core.BoxFromCenter(e.X, e.Y, e.boxW, e.boxH)
	}
}

// Circle returns the round hitbox of a coin.
func (e *Entity) Circle() core.Circle {
	return core.Circle{X: e.X, Y: e.Y, R: e.radius}
}

// Overlaps tests the exact entity geometry against a player hitbox.
func (e *Entity) Overlaps(player core.Box) bool {
	if e.Kind == KindCoin {
		return e.Circle().IntersectsBox(player)
	}
	return e.Hitbox().Intersects(player)
}

// bobOffset returns the vertical offset of a bobbing power-up: a sine
// ease in/out from 0 to -amp and back over two half periods.
func bobOffset(clock, half time.Duration, amp float64) float64 {
	if half <= 0 || amp == 0 {
		return 0
	}
	phase := math.Pi * float64(clock%(2*half)) / float64(half)
	return -amp * (1 - math.Cos(phase)) / 2
}

// newObstacle creates an obstacle of the given type at x.
func newObstacle(t ObstacleType, x float64, cfg config.ObstacleConfig) *Entity {
	shape := t.Shape(cfg)
	return &Entity{
		Kind:     KindObstacle,
		Obstacle: t,
		X:        x,
		Y:        shape.Bottom,
		spriteW:  shape.Width,
		spriteH:  shape.Height,
		hitW:     shape.Width * shape.HitboxWRatio,
		hitH:     shape.Height * shape.HitboxHRatio,
	}
}

// newCoin creates a coin centered at (x, y).
func newCoin(x, y float64, cfg config.CoinConfig) *Entity {
	return &Entity{
		Kind:   KindCoin,
		X:      x,
		Y:      y,
		radius: cfg.Radius,
	}
}

// newPowerUp creates a shield power-up centered at (x, cfg.Y).
func newPowerUp(x float64, cfg config.PowerUpConfig) *Entity {
	return &Entity{
		Kind:    KindPowerUp,
		X:       x,
		Y:       cfg.Y,
		baseY:   cfg.Y,
		bobAmp:  cfg.BobAmplitude,
		bobHalf: cfg.BobHalfPeriod(),
		boxW:    cfg.Width,
		boxH:    cfg.Height,
	}
}
