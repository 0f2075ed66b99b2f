package dash

import (
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delhi-dash/internal/config"
)

func newTestSpawner(cfg config.DashConfig, seed int64) (*Spawner, *EntityRegistry) {
	reg := NewEntityRegistry(cfg)
	diff := config.NewDifficultyManager(cfg.Speed)
	s := NewSpawner(cfg, reg, diff, rand.New(rand.NewSource(seed)), log.New(io.Discard))
	s.Start()
	return s, reg
}

func TestSpawnerTiming(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Spawn.DoubleSpawnChance = 0
	s, reg := newTestSpawner(cfg, 1)

	s.Advance(999 * time.Millisecond)
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d before the first coin run, expected 0", reg.Len())
	}

	s.Advance(1 * time.Millisecond)
	if n := reg.Count(KindCoin); n < cfg.Coins.MinCount || n > cfg.Coins.MaxCount {
		t.Errorf("first coin run has %d coins, expected %d..%d", n, cfg.Coins.MinCount, cfg.Coins.MaxCount)
	}
	if reg.Count(KindObstacle) != 0 {
		t.Error("obstacle spawned before 1500ms")
	}

	s.Advance(500 * time.Millisecond)
	if got := reg.Count(KindObstacle); got != 1 {
		t.Errorf("obstacles at 1500ms = %d, expected 1", got)
	}

	s.Advance(1500 * time.Millisecond)
	if got := reg.Count(KindObstacle); got != 2 {
		t.Errorf("obstacles at 3000ms = %d, expected 2", got)
	}
	if s.coinRuns != 2 {
		t.Errorf("coin runs at 3000ms = %d, expected 2", s.coinRuns)
	}

	s.Advance(12 * time.Second)
	if got := reg.Count(KindPowerUp); got != 1 {
		t.Errorf("power-ups at 15s = %d, expected 1", got)
	}
	if s.obstacles != 10 {
		t.Errorf("obstacles spawned by 15s = %d, expected 10", s.obstacles)
	}
}

func TestSpawnerTimingIgnoresSpeed(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Spawn.DoubleSpawnChance = 0
	cfg.Speed.Initial = cfg.Speed.Max
	s, _ := newTestSpawner(cfg, 1)

	s.Advance(6 * time.Second)
	if s.obstacles != 4 {
		t.Errorf("obstacles at 6s and max speed = %d, expected 4", s.obstacles)
	}
}

func TestSpawnerSpawnsAtSpawnLine(t *testing.T) {
	cfg := config.DefaultDashConfig()
	s, reg := newTestSpawner(cfg, 3)
	s.Advance(1500 * time.Millisecond)

	for _, e := range reg.Entities() {
		if e.Kind == KindObstacle && e.X != cfg.World.SpawnX() {
			t.Errorf("obstacle X = %v, expected %v", e.X, cfg.World.SpawnX())
		}
	}
}

func TestDoubleSpawn(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		chance  float64
		doubled bool
	}{
		{"above threshold", 12, 1, true},
		{"at threshold", 10, 1, false},
		{"zero chance", 12, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultDashConfig()
			cfg.Speed.Initial = tt.speed
			cfg.Speed.IncrementPerSecond = 0
			cfg.Spawn.DoubleSpawnChance = tt.chance
			s, reg := newTestSpawner(cfg, 5)

			s.Advance(1500 * time.Millisecond)
			if got := reg.Count(KindObstacle); got != 1 {
				t.Fatalf("obstacles at 1500ms = %d, expected 1", got)
			}
			s.Advance(799 * time.Millisecond)
			if got := reg.Count(KindObstacle); got != 1 {
				t.Fatalf("obstacles at 2299ms = %d, expected 1", got)
			}
			s.Advance(1 * time.Millisecond)

			expected := 1
			if tt.doubled {
				expected = 2
			}
			if got := reg.Count(KindObstacle); got != expected {
				t.Errorf("obstacles at 2300ms = %d, expected %d", got, expected)
			}
		})
	}
}

func TestStopCancelsPairedObstacle(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Speed.Initial = 12
	cfg.Spawn.DoubleSpawnChance = 1
	s, reg := newTestSpawner(cfg, 5)

	s.Advance(1500 * time.Millisecond)
	s.Stop()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, expected 0", s.Pending())
	}

	s.Advance(5 * time.Second)
	if got := reg.Count(KindObstacle); got != 1 {
		t.Errorf("obstacles after Stop = %d, expected 1", got)
	}
}

func TestCoinPatterns(t *testing.T) {
	cfg := config.DefaultDashConfig()
	s, _ := newTestSpawner(cfg, 1)
	cc := cfg.Coins

	tests := []struct {
		pattern CoinPattern
		y       func(i, n int) float64
	}{
		{PatternLine, func(int, int) float64 { return cc.LineY }},
		{PatternArc, func(i, n int) float64 {
			return cc.LineY - math.Sin(float64(i)/float64(n)*math.Pi)*cc.ArcAmplitude
		}},
		{PatternHigh, func(int, int) float64 { return cc.HighY }},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			coins := s.spawnCoins(tt.pattern, 5)
			if len(coins) != 5 {
				t.Fatalf("spawnCoins() returned %d coins, expected 5", len(coins))
			}
			for i, c := range coins {
				x := cfg.World.SpawnX() + float64(i)*cc.Spacing
				if c.X != x {
					t.Errorf("coin %d X = %v, expected %v", i, c.X, x)
				}
				if y := tt.y(i, 5); !approx(c.Y, y) {
					t.Errorf("coin %d Y = %v, expected %v", i, c.Y, y)
				}
			}
		})
	}
}

func TestCoinRunSizes(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Coins.MinCount = 3
	cfg.Coins.MaxCount = 7
	s, reg := newTestSpawner(cfg, 42)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		before := reg.Count(KindCoin)
		s.spawnCoinRun()
		n := reg.Count(KindCoin) - before
		if n < 3 || n > 7 {
			t.Fatalf("coin run of %d, expected 3..7", n)
		}
		seen[n] = true
	}
	if len(seen) != 5 {
		t.Errorf("saw run sizes %v, expected all of 3..7", seen)
	}
}
