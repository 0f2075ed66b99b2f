// dash is Delhi Dash, an endless runner for the terminal.
//
// Usage:
//
//	dash play [mode]       - Play a mode (default: dash)
//	dash menu              - Start menu to pick modes interactively
//	dash list              - List available modes
//	dash sim               - Run a headless simulation and print the summary
//	dash scores [mode]     - Show high scores for a mode
//	dash serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible runs
//	--db <path>              - Set database path (default: ~/.dash/scores.db)
//	--store <sqlite|gdata>   - Where the best score is kept
//	--config <path>          - Custom game config YAML
//	--log-file <path>        - Write logs to a file
//	--debug                  - Log simulation events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/games/dash"
	"github.com/vovakirdan/delhi-dash/internal/storage"
)

const appName = "delhi-dash"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Delhi Dash - an endless runner in your terminal",
	Long: `Delhi Dash is an endless runner for the terminal. Jump over barriers,
slide under rickshaws, skip the potholes and collect coins while the
traffic keeps getting faster.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all modes
  sim      - Headless simulation
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  dash play
  dash play --difficulty hard
  dash menu
  dash sim --seconds 120 --seed 42 --autopilot
  dash serve --ssh :2222
  dash scores dash_hard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch flagStore {
		case "sqlite", "gdata":
		default:
			return fmt.Errorf("unknown --store %q (expected sqlite or gdata)", flagStore)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "High score store: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log simulation events at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. The TUI owns the terminal, so logs
// go to --log-file when set and to fallback otherwise.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// mustLoadConfig validates the game config once at startup.
// An invalid config is fatal.
func mustLoadConfig() {
	dash.SetConfigPath(flagConfig)
	if _, err := config.LoadDash(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStores opens the score history and wires the high score store used
// by every new session. The returned store may be nil; the game still works.
func openStores(logger *log.Logger) *storage.Store {
	dash.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	switch flagStore {
	case "gdata":
		gd, gdErr := storage.OpenGData(appName, logger)
		if gdErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", gdErr)
			dash.SetHighScoreStore(dash.NewMemoryStore())
			break
		}
		dash.SetHighScoreStore(gd)
	default:
		if store == nil {
			dash.SetHighScoreStore(dash.NewMemoryStore())
			break
		}
		dash.SetHighScoreStore(store.HighScores(logger))
	}

	return store
}
