package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/delhi-dash/internal/core"
	"github.com/vovakirdan/delhi-dash/internal/games/dash"
	"github.com/vovakirdan/delhi-dash/internal/platform/tui"
	"github.com/vovakirdan/delhi-dash/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a run of the given mode. Without a mode, --difficulty picks one.

Controls:
  Space/Up/W   - Jump
  Down/S       - Slide
  P            - Pause
  R/Space      - Retry (after game over)
  B/Esc        - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Speed ramps up at half the usual rate
  normal - Starts at speed 8 and ramps up to 18
  hard   - Starts at speed 10, paired obstacles from the first second
  fixed  - No progression, speed stays at the start value

Examples:
  dash play
  dash play dash_hard
  dash play --difficulty easy
  dash play --config ./my-dash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := dash.ModeForPreset(flagDifficulty)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available modes.")
		os.Exit(1)
	}

	mustLoadConfig()

	logger, closeLog, err := newLogger("dash", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStores(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	exit, runErr := tui.Run(game, store, cfg)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// B/Esc from a direct run opens the menu
	if exit == tui.ExitMenu {
		menuLoop(store, cfg)
	}
}
