// skyshooter is a single-screen arcade shooter for the terminal.
//
// Usage:
//
//	skyshooter                  - Play (same as "skyshooter play")
//	skyshooter play             - Play the game
//	skyshooter config           - Print the effective configuration
//	skyshooter assets           - Show how each sound cue resolves
//	skyshooter simulate         - Run a headless autopilot session
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write logs here while the game runs
//	--mute             - Disable sound
//	--assets <dir>     - Look for sound files in this directory first
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagMute    bool
	flagAssets  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyshooter",
	Short: "Sky Shooter - a terminal arcade shooter",
	Long: `Sky Shooter is a single-screen arcade shooter for your terminal.
Move along the bottom of the field, shoot the descending enemies and
survive the boss that appears once your score reaches the threshold.

Available commands:
  play      - Play the game (default)
  config    - Print the effective configuration
  assets    - Show how each sound cue resolves
  simulate  - Run a headless autopilot session

Examples:
  skyshooter
  skyshooter --mute --fps 30
  skyshooter play --config ./my-shooter.yaml
  skyshooter simulate --ticks 3600 --seed 42`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory searched first for sound files")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(simulateCmd)
}
