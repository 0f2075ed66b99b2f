package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/delhi-dash/internal/config"
	"github.com/vovakirdan/delhi-dash/internal/core"
	"github.com/vovakirdan/delhi-dash/internal/games/dash"
)

var (
	flagSimSeconds    float64
	flagSimAutopilot  bool
	flagSimTrace      bool
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game core without a terminal UI, using the same fixed step
as the interactive game, and print the final summary.

Without --autopilot the runner never moves, so the first obstacle ends
the run. The simulation never touches the stored high score.

Examples:
  dash sim --seed 42
  dash sim --seconds 300 --autopilot --difficulty hard
  dash sim --seed 7 --autopilot --trace`,
	Run: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated seconds to run")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Slide under every obstacle")
	simCmd.Flags().BoolVar(&flagSimTrace, "trace", false, "Print the state once per simulated second")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) {
	mustLoadConfig()

	logger, closeLog, err := newLogger("dash-sim", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := dash.LoadModeConfig(config.ParsePreset(flagSimDifficulty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := dash.NewSession(cfg, dash.Options{
		Seed:   seed,
		Store:  dash.NewMemoryStore(),
		Logger: logger,
	})

	step := core.RuntimeConfig{TickRate: flagFPS}.TickDelta()
	limit := time.Duration(flagSimSeconds * float64(time.Second))
	pilot := dash.NewAutopilot()

	fmt.Printf("Simulating %v at %d ticks/s (seed %d)\n", limit, flagFPS, seed)

	var ticks int
	for session.State().Elapsed < limit && !session.State().IsOver {
		if flagSimAutopilot {
			pilot.Act(session)
		}
		session.Tick(step)
		ticks++

		if flagSimTrace && ticks%flagFPS == 0 {
			printTrace(session.Snapshot())
		}
	}

	st := session.State()
	if !st.IsOver {
		fmt.Println()
		fmt.Printf("Still running after %v\n", st.Elapsed)
		fmt.Printf("  Score:    %d\n", st.Score)
		fmt.Printf("  Coins:    %d\n", st.Coins)
		fmt.Printf("  Distance: %dm\n", int(st.Distance))
		fmt.Printf("  Speed:    %.2f (%.1fx)\n", st.Speed, session.Multiplier())
		return
	}

	// Let the presentation delay run out so the summary is emitted
	session.Tick(cfg.Session.SummaryDelay())
	summary, ok := session.Summary()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: summary was not emitted")
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("GAME OVER after %v\n", st.Elapsed)
	fmt.Printf("  Score:    %d\n", summary.Score)
	fmt.Printf("  Coins:    %d\n", summary.Coins)
	fmt.Printf("  Distance: %dm\n", summary.Distance)
	fmt.Printf("  Speed:    %.2f (%.1fx)\n", st.Speed, session.Multiplier())
	fmt.Printf("  Best:     %d\n", summary.HighScore)
	if summary.IsNewHighScore {
		fmt.Println("  NEW HIGH SCORE!")
	}
}

func printTrace(snap dash.Snapshot) {
	shield := "-"
	if snap.Shield {
		shield = fmt.Sprintf("%.1fs", snap.ShieldRemaining.Seconds())
	}
	fmt.Printf("t=%-6.1f speed=%-6.2f score=%-5d coins=%-4d dist=%-6.1f entities=%-3d posture=%-8s shield=%s\n",
		snap.Elapsed.Seconds(), snap.Speed, snap.Score, snap.Coins, snap.Distance, len(snap.Entities), snap.Posture, shield)
}
