// Package dash implements the Delhi Dash endless runner simulation.
//
// A Session owns one run: the speed ramp, the entity registry, the three
// spawn timers, the player state machine, collision rules, score
// accumulation and the game-over notifier. It is advanced by explicit time
// deltas and never reads the wall clock, so runs are reproducible from a seed.
package dash

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delhi-dash/internal/config"
)

// Options configures a Session.
type Options struct {
	Seed      int64          // RNG seed for spawn selection
	Store     HighScoreStore // Optional high-score persistence
	OnSummary func(Summary)  // Optional callback, called once with the final summary
	Logger    *log.Logger    // Optional; nil discards logs
}

// State is a read-only view of the session aggregate.
type State struct {
	Score     int
	Coins     int
	Distance  float64
	Speed     float64
	Elapsed   time.Duration
	IsOver    bool
	Abandoned bool
}

// Session is one play attempt from start until game-over.
// It is not safe for concurrent use: the tick loop is its only writer.
type Session struct {
	cfg config.DashConfig
	log *log.Logger

	difficulty *config.DifficultyManager
	registry   *EntityRegistry
	spawner    *Spawner
	player     *Player
	collisions *CollisionResolver
	progress   *Progress
	notifier   *GameOverNotifier
	events     *eventQueue

	elapsed   time.Duration
	ticks     uint64
	over      bool
	abandoned bool
}

// NewSession creates a fresh session and starts its spawn timers.
// cfg is expected to have passed Validate at startup.
func NewSession(cfg config.DashConfig, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	events := &eventQueue{}
	difficulty := config.NewDifficultyManager(cfg.Speed)
	registry := NewEntityRegistry(cfg)
	player := NewPlayer(cfg, events)
	progress := NewProgress(cfg.Scoring)

	s := &Session{
		cfg:        cfg,
		log:        logger,
		difficulty: difficulty,
		registry:   registry,
		spawner:    NewSpawner(cfg, registry, difficulty, rand.New(rand.NewSource(opts.Seed)), logger),
		player:     player,
		collisions: NewCollisionResolver(cfg, registry, player, progress, events, logger),
		progress:   progress,
		notifier:   NewGameOverNotifier(opts.Store, cfg.Session.HighScoreKey, cfg.Session.SummaryDelay(), opts.OnSummary, events, logger),
		events:     events,
	}
	s.spawner.Start()
	s.log.Debug("session started", "seed", opts.Seed, "speed", difficulty.Speed())
	return s
}

// Tick advances the simulation by delta and returns the events it produced.
// Per tick: speed, movement and reaping, spawns, collisions, player
// timers, then score. After game-over only the summary timer runs.
func (s *Session) Tick(delta time.Duration) []Event {
	if s.abandoned || delta <= 0 {
		return nil
	}
	if s.over {
		s.notifier.Advance(delta)
		return s.events.drain()
	}

	s.ticks++
	s.elapsed += delta

	s.difficulty.Advance(delta)

	s.player.Move(delta)
	s.registry.Advance(s.difficulty.Velocity()*delta.Seconds(), delta)
	s.registry.Reap()

	s.spawner.Advance(delta)

	if s.collisions.Resolve() == OutcomeGameOver {
		s.endGame()
		return s.events.drain()
	}

	s.player.Advance(delta)
	s.progress.Accrue(s.difficulty.Speed())

	return s.events.drain()
}

// endGame freezes the session and hands the final stats to the notifier.
func (s *Session) endGame() {
	s.over = true
	s.spawner.Stop()
	s.player.Freeze()
	s.events.emit(GameOverEvent{Score: s.progress.Score()})
	s.notifier.Trigger(s.progress.Score(), s.progress.Coins(), s.progress.Meters())
}

// Jump triggers a jump. Ignored when not allowed.
func (s *Session) Jump() bool {
	if s.over || s.abandoned {
		return false
	}
	return s.player.Jump()
}

// Slide triggers a slide. Ignored when not allowed.
func (s *Session) Slide() bool {
	if s.over || s.abandoned {
		return false
	}
	return s.player.Slide()
}

// Abandon discards the session before or after game-over. All timers and
// entities are dropped and no summary will be emitted.
func (s *Session) Abandon() {
	if s.abandoned {
		return
	}
	s.abandoned = true
	s.spawner.Stop()
	s.player.Freeze()
	s.notifier.Cancel()
	s.registry.Clear()
	s.events.drain()
	s.log.Debug("session abandoned", "elapsed", s.elapsed)
}

// State returns the current aggregate values.
func (s *Session) State() State {
	return State{
		Score:     s.progress.Score(),
		Coins:     s.progress.Coins(),
		Distance:  s.progress.Distance(),
		Speed:     s.difficulty.Speed(),
		Elapsed:   s.elapsed,
		IsOver:    s.over,
		Abandoned: s.abandoned,
	}
}

// Summary returns the final summary once it has been emitted.
func (s *Session) Summary() (Summary, bool) {
	if !s.notifier.Emitted() {
		return Summary{}, false
	}
	return s.notifier.summary, true
}

// FinalStats returns the summary as soon as game-over is triggered,
// before the presentation delay has elapsed.
func (s *Session) FinalStats() (Summary, bool) {
	if !s.over || s.abandoned {
		return Summary{}, false
	}
	return s.notifier.summary, true
}

// Player exposes the player state machine for inspection.
func (s *Session) Player() *Player {
	return s.player
}

// Registry exposes the live entities for inspection.
func (s *Session) Registry() *EntityRegistry {
	return s.registry
}

// Multiplier returns the current speed relative to the starting speed.
func (s *Session) Multiplier() float64 {
	return s.difficulty.Multiplier()
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.DashConfig {
	return s.cfg
}
