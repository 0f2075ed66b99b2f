package dash

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/sched"
)

// Spawner runs the obstacle, coin and power-up timers and feeds new
// entities into the registry. Timers fire on session time, independent of speed.
type Spawner struct {
	cfg        config.DashConfig
	registry   *EntityRegistry
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	timers     *sched.Scheduler
	log        *log.Logger

	obstacles, doubles, coinRuns, powerUps int
}

// NewSpawner creates a spawner. Timers start with Start.
func NewSpawner(cfg config.DashConfig, reg *EntityRegistry, diff *config.DifficultyManager, rng *rand.Rand, logger *log.Logger) *Spawner {
	return &Spawner{
		cfg:        cfg,
		registry:   reg,
		difficulty: diff,
		rng:        rng,
		timers:     sched.New(),
		log:        logger,
	}
}

// Start registers the three repeating timers and the opening coin run.
func (s *Spawner) Start() {
	s.timers.Every(s.cfg.Spawn.ObstacleInterval(), s.obstacleTick)
	s.timers.Every(s.cfg.Spawn.CoinInterval(), s.spawnCoinRun)
	s.timers.Every(s.cfg.Spawn.PowerUpInterval(), s.spawnPowerUp)
	s.timers.After(s.cfg.Spawn.FirstCoinDelay(), s.spawnCoinRun)
}

// Advance fires every timer that becomes due within dt.
func (s *Spawner) Advance(dt time.Duration) {
	s.timers.Advance(dt)
}

// Stop cancels every timer, including a pending paired obstacle.
func (s *Spawner) Stop() {
	s.timers.Stop()
}

// Pending returns the number of timers that can still fire.
func (s *Spawner) Pending() int {
	return s.timers.Pending()
}

func (s *Spawner) obstacleTick() {
	s.spawnObstacle(s.randomObstacleType())

	if s.difficulty.Speed() > s.cfg.Spawn.DoubleSpawnSpeed && s.rng.Float64() < s.cfg.Spawn.DoubleSpawnChance {
		s.doubles++
		s.log.Debug("double obstacle queued", "speed", s.difficulty.Speed())
		s.timers.After(s.cfg.Spawn.DoubleSpawnDelay(), func() {
			s.spawnObstacle(s.randomObstacleType())
		})
	}
}

func (s *Spawner) randomObstacleType() ObstacleType {
	return obstacleTypes[s.rng.Intn(len(obstacleTypes))]
}

// spawnObstacle places one obstacle at the spawn line.
func (s *Spawner) spawnObstacle(t ObstacleType) *Entity {
	e := newObstacle(t, s.cfg.World.SpawnX(), s.cfg.Obstacles)
	s.registry.Add(e)
	s.obstacles++
	return e
}

func (s *Spawner) spawnCoinRun() {
	count := s.cfg.Coins.MinCount
	if span := s.cfg.Coins.MaxCount - s.cfg.Coins.MinCount; span > 0 {
		count += s.rng.Intn(span + 1)
	}
	pattern := CoinPattern(s.rng.Intn(3))
	s.spawnCoins(pattern, count)
}

// spawnCoins places a run of count coins in the given pattern.
func (s *Spawner) spawnCoins(pattern CoinPattern, count int) []*Entity {
	cc := s.cfg.Coins
	startX := s.cfg.World.SpawnX()
	coins := make([]*Entity, 0, count)

	for i := 0; i < count; i++ {
		x := startX + float64(i)*cc.Spacing
		var y float64
		switch pattern {
		case PatternArc:
			y = cc.LineY - math.Sin(float64(i)/float64(count)*math.Pi)*cc.ArcAmplitude
		case PatternHigh:
			y = cc.HighY
		default:
			y = cc.LineY
		}
		c := newCoin(x, y, cc)
		s.registry.Add(c)
		coins = append(coins, c)
	}
	s.coinRuns++
	return coins
}

// spawnPowerUp places one shield power-up at the spawn line.
func (s *Spawner) spawnPowerUp() {
	p := newPowerUp(s.cfg.World.SpawnX(), s.cfg.PowerUp)
	s.registry.Add(p)
	s.powerUps++
}
