package dash

import (
	"time"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/core"
)

// Collision tags, one per entity kind.
var (
	tagObstacle = resolv.NewTag("obstacle")
	tagCoin     = resolv.NewTag("coin")
	tagPowerUp  = resolv.NewTag("powerup")
)

func kindTag(k Kind) resolv.Tags {
	switch k {
	case KindCoin:
		return tagCoin
	case KindPowerUp:
		return tagPowerUp
	default:
		return tagObstacle
	}
}

// EntityRegistry tracks every live obstacle, coin and power-up.
// Each entity mirrors its hitbox into a resolv space that serves as the
// broad phase for collision queries.
type EntityRegistry struct {
	obstacleReapX float64
	coinReapX     float64
	powerUpReapX  float64

	space    *resolv.Space
	entities []*Entity // Live entities in insertion order
	byShape  map[resolv.IShape]*Entity
	nextID   uint64

	probe    resolv.IShape // Player hitbox
	probeBox core.Box
}

// NewEntityRegistry creates an empty registry sized for the configured world.
func NewEntityRegistry(cfg config.DashConfig) *EntityRegistry {
	// Cover the spawn area including the tail of the longest coin run
	spaceW := cfg.World.SpawnX() + cfg.Coins.Spacing*float64(cfg.Coins.MaxCount) + cfg.Obstacles.Rickshaw.Width
	return &EntityRegistry{
		obstacleReapX: cfg.Obstacles.ReapX,
		coinReapX:     cfg.Coins.ReapX,
		powerUpReapX:  cfg.PowerUp.ReapX,
		space:         resolv.NewSpace(int(spaceW), int(cfg.World.Height), 32, 32),
		entities:      make([]*Entity, 0, 32),
		byShape:       make(map[resolv.IShape]*Entity),
	}
}

// Add registers a new entity and assigns its ID.
func (r *EntityRegistry) Add(e *Entity) {
	r.nextID++
	e.ID = r.nextID
	e.alive = true

	box := e.Hitbox()
	if e.Kind == KindCoin {
		e.shape = resolv.NewCircle(e.X, e.Y, e.radius)
	} else {
		e.shape = resolv.NewRectangleFromTopLeft(box.X, box.Y, box.W, box.H)
	}
	e.shape.Tags().Set(kindTag(e.Kind))
	r.space.Add(e.shape)
	r.byShape[e.shape] = e

	r.entities = append(r.entities, e)
}

// Advance shifts every live entity left by dx world units and steps the
// power-up bob by dt.
func (r *EntityRegistry) Advance(dx float64, dt time.Duration) {
	for _, e := range r.entities {
		e.X -= dx
		if e.Kind == KindPowerUp {
			e.bobClock += dt
			e.Y = e.baseY + bobOffset(e.bobClock, e.bobHalf, e.bobAmp)
		}
		r.syncShape(e)
	}
}

// syncShape moves the entity's collision shape to its current position.
// resolv positions shapes by their center.
func (r *EntityRegistry) syncShape(e *Entity) {
	if e.Kind == KindCoin {
		e.shape.SetPosition(e.X, e.Y)
		return
	}
	e.shape.SetPosition(e.Hitbox().Center())
}

// Reap removes every entity that crossed its off-screen threshold and
// returns how many were removed.
func (r *EntityRegistry) Reap() int {
	reaped := 0
	live := r.entities[:0]
	for _, e := range r.entities {
		if e.X < r.reapX(e.Kind) {
			r.release(e)
			reaped++
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = live
	return reaped
}

func (r *EntityRegistry) reapX(k Kind) float64 {
	switch k {
	case KindCoin:
		return r.coinReapX
	case KindPowerUp:
		return r.powerUpReapX
	default:
		return r.obstacleReapX
	}
}

// Remove destroys a single entity. Removing a dead entity is a no-op.
func (r *EntityRegistry) Remove(e *Entity) {
	if e == nil || !e.alive {
		return
	}
	for i, live := range r.entities {
		if live == e {
			copy(r.entities[i:], r.entities[i+1:])
			r.entities[len(r.entities)-1] = nil
			r.entities = r.entities[:len(r.entities)-1]
			break
		}
	}
	r.release(e)
}

// release marks the entity dead and drops its collision shape.
func (r *EntityRegistry) release(e *Entity) {
	e.alive = false
	if e.shape != nil {
		r.space.Remove(e.shape)
		delete(r.byShape, e.shape)
	}
}

// Clear destroys every entity.
func (r *EntityRegistry) Clear() {
	for _, e := range r.entities {
		r.release(e)
	}
	clear(r.entities)
	r.entities = r.entities[:0]
}

// Entities returns the live entities in insertion order.
// The slice must not be modified by the caller.
func (r *EntityRegistry) Entities() []*Entity {
	return r.entities
}

// Len returns the number of live entities.
func (r *EntityRegistry) Len() int {
	return len(r.entities)
}

// Count returns the number of live entities of one kind.
func (r *EntityRegistry) Count(k Kind) int {
	n := 0
	for _, e := range r.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// SetProbe places the player hitbox in the space. The shape is rebuilt
// only when the hitbox size changes (standing vs sliding).
func (r *EntityRegistry) SetProbe(box core.Box) {
	if r.probe != nil && r.probeBox.W == box.W && r.probeBox.H == box.H {
		r.probe.SetPosition(box.Center())
		r.probeBox = box
		return
	}
	if r.probe != nil {
		r.space.Remove(r.probe)
	}
	r.probe = resolv.NewRectangleFromTopLeft(box.X, box.Y, box.W, box.H)
	r.space.Add(r.probe)
	r.probeBox = box
}

// Touching returns the live entities of one kind whose shapes intersect
// the probe, in registry order. SetProbe must be called first.
func (r *EntityRegistry) Touching(k Kind) []*Entity {
	if r.probe == nil {
		return nil
	}

	hits := make(map[*Entity]bool)
	r.probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: r.probe.SelectTouchingCells(1).FilterShapes().ByTags(kindTag(k)),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if e, ok := r.byShape[set.OtherShape]; ok {
				hits[e] = true
			}
			return true
		},
	})
	if len(hits) == 0 {
		return nil
	}

	out := make([]*Entity, 0, len(hits))
	for _, e := range r.entities {
		if hits[e] {
			out = append(out, e)
		}
	}
	return out
}
