package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyshooter/internal/audio"
	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/shooter"
	"github.com/vovakirdan/skyshooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Space            - Start / fire
  P/Esc            - Pause
  R                - Back to the title screen (after game over)
  Q/Ctrl+C         - Quit

Examples:
  skyshooter play
  skyshooter play --seed 42
  skyshooter play --config ./my-shooter.yaml --log-file shooter.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	stderr := newLogger(os.Stderr)

	cfg, err := loadConfig(stderr)
	if err != nil {
		fatal(stderr, "invalid configuration", err)
	}

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fatal(stderr, "cannot start", err)
	}
	defer closeLog()

	// Sound is optional: every failure below leaves a silent player
	player := audio.Load(cfg.Audio, audio.SearchDirs(flagAssets, cfg.Audio.AssetDir), logger)
	if cfg.Audio.Enabled && !flagMute {
		if err := player.Open(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}
	defer player.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := shooter.New(cfg, player)

	if err := tui.Run(game, tui.Options{
		Runtime:   runtime,
		HoldTicks: cfg.Input.HoldTicks(flagFPS),
		Logger:    logger,
	}); err != nil {
		player.Close()
		closeLog()
		fatal(stderr, "error running game", err)
	}
}
