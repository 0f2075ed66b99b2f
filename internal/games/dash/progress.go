package dash

import (
	"math"

	"github.com/vovakirdan/delhi-dash/internal/config"
)

// Progress accumulates score, coins and distance for one session.
type Progress struct {
	cfg      config.ScoringConfig
	score    int
	coins    int
	distance float64
}

// NewProgress creates zeroed accumulators.
func NewProgress(cfg config.ScoringConfig) *Progress {
	return &Progress{cfg: cfg}
}

// Accrue applies one tick of travel at the given speed.
func (p *Progress) Accrue(speed float64) {
	p.distance += speed * p.cfg.DistancePerTick
	p.score += int(math.Floor(speed * p.cfg.ScorePerTick))
}

// AddCoin counts one collected coin worth value points.
func (p *Progress) AddCoin(value int) {
	p.coins++
	p.score += value
}

// AddBonus adds points without counting a coin.
func (p *Progress) AddBonus(value int) {
	p.score += value
}

// Score returns the current score.
func (p *Progress) Score() int { return p.score }

// Coins returns the number of coins collected.
func (p *Progress) Coins() int { return p.coins }

// Distance returns the exact distance travelled.
func (p *Progress) Distance() float64 { return p.distance }

// Meters returns the distance rounded down, as shown to the player.
func (p *Progress) Meters() int { return int(math.Floor(p.distance)) }
