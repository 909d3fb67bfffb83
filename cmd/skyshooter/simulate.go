package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/shooter"
)

var (
	flagTicks     int
	flagFireEvery int
	flagRestart   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot session",
	Long: `Runs the simulation without a terminal UI or sound. An autopilot
steers under the lowest enemy and fires at a fixed cadence. The final
state is printed as YAML; the same seed always gives the same result.

Examples:
  skyshooter simulate --seed 42
  skyshooter simulate --ticks 36000 --fire-every 4 --restart`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 6, "Autopilot fires every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new session after game over")
}

// cueCounter is a sink that counts cues instead of playing them.
type cueCounter map[string]int

func (c cueCounter) Play(cue core.Cue) {
	c[cue.String()]++
}

// simulation is the YAML report printed by simulate.
type simulation struct {
	Seed     int64            `yaml:"seed"`
	Ticks    int              `yaml:"ticks"`
	Elapsed  string           `yaml:"elapsed"`
	Sessions int              `yaml:"sessions"`
	Best     int              `yaml:"best"`
	Cues     cueCounter       `yaml:"cues"`
	Final    shooter.Snapshot `yaml:"final"`
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal(logger, "invalid configuration", err)
	}
	if flagTicks < 0 {
		fatal(logger, "invalid flag", fmt.Errorf("--ticks must not be negative, got %d", flagTicks))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cues := cueCounter{}
	game := shooter.New(cfg, cues)
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})
	pilot := &shooter.Autopilot{FireEvery: flagFireEvery, Restart: flagRestart}

	report := simulation{Seed: seed, Ticks: flagTicks, Cues: cues}
	start := time.Now()
	wasOver := false
	for range flagTicks {
		result := game.Step(pilot.Next(game))

		if result.State.GameOver && !wasOver {
			report.Sessions++
			report.Best = max(report.Best, result.State.Score)
			logger.Debug("session over", "score", result.State.Score)
		}
		wasOver = result.State.GameOver
	}
	report.Elapsed = time.Since(start).Round(time.Microsecond).String()
	report.Best = max(report.Best, game.State().Score)
	report.Final = game.Snapshot()

	out, err := yaml.Marshal(report)
	if err != nil {
		fatal(logger, "cannot encode report", err)
	}
	fmt.Print(string(out))
}
