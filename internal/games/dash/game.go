package dash

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/core"
	"github.com/vovakirdan/delhi-dash/internal/registry"
)

// Mode describes one registered way to play.
type Mode struct {
	ID     string
	Title  string
	Preset config.DifficultyPreset
}

// Modes lists every registered mode; the first is the default.
var Modes = []Mode{
	{ID: "dash", Title: "Delhi Dash", Preset: config.DifficultyNormal},
	{ID: "dash_easy", Title: "Delhi Dash: Easy", Preset: config.DifficultyEasy},
	{ID: "dash_hard", Title: "Delhi Dash: Hard", Preset: config.DifficultyHard},
	{ID: "dash_fixed", Title: "Delhi Dash: Steady Pace", Preset: config.DifficultyFixed},
}

// ModeForPreset returns the mode ID for a --difficulty value.
// Unknown or empty presets map to the default mode.
func ModeForPreset(preset string) string {
	p := config.ParsePreset(preset)
	for _, m := range Modes {
		if m.Preset == p {
			return m.ID
		}
	}
	return Modes[0].ID
}

// configPath stores the custom config path set via CLI
var configPath string

// highScores is shared by every game created by the registry.
var highScores HighScoreStore

// logger receives simulation logs; discarded unless set.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetHighScoreStore sets the store used by new sessions.
func SetHighScoreStore(store HighScoreStore) {
	highScores = store
}

// SetLogger sets the logger passed to new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// HighScoreKey returns the store key used by a preset. The default mode
// keeps the base key so its best score carries over between versions.
func HighScoreKey(base string, preset config.DifficultyPreset) string {
	if preset == "" || preset == config.DifficultyNormal {
		return base
	}
	return base + "." + string(preset)
}

// LoadModeConfig loads the config and applies the mode's preset.
// On error the defaults are returned together with the error.
func LoadModeConfig(preset config.DifficultyPreset) (config.DashConfig, error) {
	cfg, err := config.LoadDash(configPath)
	if err != nil {
		cfg = config.DefaultDashConfig()
	}
	config.ApplyDashPreset(&cfg, preset)
	cfg.Session.HighScoreKey = HighScoreKey(cfg.Session.HighScoreKey, preset)
	return cfg, err
}

// Game adapts a Session to the platform's fixed-step game loop.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.DashConfig
	session *Session
	paused  bool
	frame   int // Animation counter
	fx      effects
	summary *Summary
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// Reset starts a fresh session. A previous session is abandoned.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadModeConfig(g.mode.Preset)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	g.cfg = cfg

	if g.session != nil {
		g.session.Abandon()
	}
	g.session = NewSession(cfg, Options{
		Seed:   runtime.Seed,
		Store:  highScores,
		Logger: logger.With("mode", g.mode.ID),
	})
	g.paused = false
	g.frame = 0
	g.fx = effects{}
	g.summary = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	over := g.session.State().IsOver
	if !over && in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.Jump()
	}
	if in.Has(core.ActionSlide) {
		g.session.Slide()
	}

	events := g.session.Tick(g.runtime.TickDelta())
	g.frame++
	g.fx.step()
	g.fx.apply(events, g.runtime.TickRate)
	for _, ev := range events {
		if e, ok := ev.(SummaryEvent); ok {
			sum := e.Summary
			g.summary = &sum
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	out := core.GameState{
		Score:    st.Score,
		Coins:    st.Coins,
		Distance: int(st.Distance),
		GameOver: st.IsOver,
		Paused:   g.paused,
	}
	if final, ok := g.session.FinalStats(); ok {
		out.NewHighScore = final.IsNewHighScore
	}
	_, out.SummaryShown = g.session.Summary()
	return out
}

// Abandon discards the running session.
func (g *Game) Abandon() {
	if g.session != nil {
		g.session.Abandon()
	}
}

// Session returns the running session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Register every mode with the registry
func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
}
