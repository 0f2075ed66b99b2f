package dash

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delhi-dash/internal/config"
)

// Outcome is the result of resolving one tick of overlaps.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeAbsorbed         // The shield destroyed an obstacle
	OutcomeGameOver         // An obstacle hit an unshielded player
)

// CollisionResolver applies the overlap rules between the player and
// every entity kind.
type CollisionResolver struct {
	scoring  config.ScoringConfig
	registry *EntityRegistry
	player   *Player
	progress *Progress
	events   *eventQueue
	log      *log.Logger
}

// NewCollisionResolver wires a resolver to the session components.
func NewCollisionResolver(cfg config.DashConfig, reg *EntityRegistry, player *Player, progress *Progress, events *eventQueue, logger *log.Logger) *CollisionResolver {
	return &CollisionResolver{
		scoring:  cfg.Scoring,
		registry: reg,
		player:   player,
		progress: progress,
		events:   events,
		log:      logger,
	}
}

// Resolve evaluates this tick's overlaps. Obstacles are checked first, in
// registry order, and the first absorb or hit ends obstacle processing.
// Coin and power-up overlaps are all applied unless the tick ended the game.
func (c *CollisionResolver) Resolve() Outcome {
	hitbox := c.player.Hitbox()
	c.registry.SetProbe(hitbox)

	outcome := OutcomeNone
	for _, o := range c.registry.Touching(KindObstacle) {
		if !o.Overlaps(hitbox) {
			continue
		}
		if c.player.Posture() == Sliding && o.Obstacle.SlideThrough() {
			continue
		}
		if c.player.HasShield() {
			c.player.ConsumeShield()
			c.registry.Remove(o)
			c.events.emit(ShieldAbsorbedEvent{X: o.X, Y: o.Y})
			c.log.Debug("shield absorbed obstacle", "type", o.Obstacle, "id", o.ID)
			outcome = OutcomeAbsorbed
			break
		}
		c.log.Debug("obstacle hit", "type", o.Obstacle, "id", o.ID)
		return OutcomeGameOver
	}

	for _, coin := range c.registry.Touching(KindCoin) {
		if !coin.Overlaps(hitbox) {
			continue
		}
		c.registry.Remove(coin)
		c.progress.AddCoin(c.scoring.CoinValue)
		c.events.emit(CoinCollectedEvent{Amount: c.scoring.CoinValue, X: coin.X, Y: coin.Y})
	}

	for _, p := range c.registry.Touching(KindPowerUp) {
		if !p.Overlaps(hitbox) {
			continue
		}
		c.registry.Remove(p)
		c.player.GrantShield()
		c.progress.AddBonus(c.scoring.PowerUpValue)
		c.events.emit(PowerUpCollectedEvent{Amount: c.scoring.PowerUpValue, X: p.X, Y: p.Y})
	}

	return outcome
}
