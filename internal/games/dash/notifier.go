package dash

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delhi-dash/internal/sched"
)

// HighScoreStore persists the best score under a fixed key.
// Get returns 0 when nothing is stored.
type HighScoreStore interface {
	Get(key string) int
	Set(key string, score int)
}

// Summary is the final record of a finished session.
type Summary struct {
	Score          int
	Coins          int
	Distance       int // Whole meters
	IsNewHighScore bool
	HighScore      int // Best score after this session
}

// MemoryStore is an in-process HighScoreStore.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// Get returns the stored score for key, or 0.
func (m *MemoryStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[key]
}

// Set stores score under key.
func (m *MemoryStore) Set(key string, score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[key] = score
}

// GameOverNotifier persists the high score once and emits the summary
// after the presentation delay.
type GameOverNotifier struct {
	store     HighScoreStore
	key       string
	delay     time.Duration
	onSummary func(Summary)
	events    *eventQueue
	log       *log.Logger

	timers    *sched.Scheduler
	triggered bool
	summary   Summary
	emitted   bool
}

// NewGameOverNotifier creates a notifier. store may be nil, in which case
// nothing is persisted and every positive score counts as a new best.
func NewGameOverNotifier(store HighScoreStore, key string, delay time.Duration, onSummary func(Summary), events *eventQueue, logger *log.Logger) *GameOverNotifier {
	return &GameOverNotifier{
		store:     store,
		key:       key,
		delay:     delay,
		onSummary: onSummary,
		events:    events,
		log:       logger,
		timers:    sched.New(),
	}
}

// Trigger records the final stats. Only the first call has any effect.
func (n *GameOverNotifier) Trigger(score, coins, meters int) Summary {
	if n.triggered {
		return n.summary
	}
	n.triggered = true

	best := 0
	if n.store != nil {
		best = n.store.Get(n.key)
	}
	isNew := score > best
	if isNew {
		best = score
		if n.store != nil {
			n.store.Set(n.key, score)
		}
	}

	n.summary = Summary{
		Score:          score,
		Coins:          coins,
		Distance:       meters,
		IsNewHighScore: isNew,
		HighScore:      best,
	}
	n.log.Debug("game over", "score", score, "coins", coins, "distance", meters, "new_high", isNew)

	n.timers.After(n.delay, n.emit)
	return n.summary
}

func (n *GameOverNotifier) emit() {
	n.emitted = true
	n.events.emit(SummaryEvent{Summary: n.summary})
	n.log.Debug("summary emitted", "score", n.summary.Score)
	if n.onSummary != nil {
		n.onSummary(n.summary)
	}
}

// Advance runs the presentation delay timer.
func (n *GameOverNotifier) Advance(dt time.Duration) {
	n.timers.Advance(dt)
}

// Cancel drops a pending summary.
func (n *GameOverNotifier) Cancel() {
	n.timers.Stop()
}

// Emitted reports whether the summary has been delivered.
func (n *GameOverNotifier) Emitted() bool {
	return n.emitted
}
