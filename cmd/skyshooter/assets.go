package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/audio"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show how each sound cue resolves",
	Long: `Lists every sound cue with the file it was loaded from, or the
fallback used when no usable file was found. The audio device is not opened.

Sound directories are searched in this order:
  --assets <dir>
  audio.asset_dir from the config
  $SKYSHOOTER_ASSETS
  ~/.skyshooter/sounds
  ./assets/sounds`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal(logger, "invalid configuration", err)
	}

	dirs := audio.SearchDirs(flagAssets, cfg.Audio.AssetDir)
	player := audio.Load(cfg.Audio, dirs, logger)

	rows := make([]table.Row, 0, len(player.Status()))
	for _, st := range player.Status() {
		detail := st.Path
		if st.Source != audio.SourceFile {
			detail = cfg.Audio.Cues[st.Cue.String()] + " (missing)"
		}
		rows = append(rows, table.Row{st.Cue.String(), st.Source.String(), detail})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Cue", Width: 12},
			{Title: "Source", Width: 8},
			{Title: "File", Width: 48},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fmt.Println(t.View())
	fmt.Printf("\nsearched: %v\n", dirs)
	if flagMute || !cfg.Audio.Enabled {
		fmt.Println("sound is disabled for play")
	}
}
