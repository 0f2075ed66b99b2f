package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/delhi-dash/internal/core"
	"github.com/vovakirdan/delhi-dash/internal/platform/tui"
	"github.com/vovakirdan/delhi-dash/internal/registry"
	"github.com/vovakirdan/delhi-dash/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start Delhi Dash in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
B or Esc during a run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  dash menu
  dash menu --fps 30
  dash menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	mustLoadConfig()

	logger, closeLog, err := newLogger("dash", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStores(logger)
	menuLoop(store, runtimeConfig())

	if store != nil {
		store.Close()
	}
}

// menuLoop shows the menu until the user quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		exit, err := tui.Run(game, store, runCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if exit == tui.ExitQuit {
			return
		}
	}
}
