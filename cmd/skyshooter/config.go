package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use, as YAML.

The config is searched in this order:
  --config <path>
  ~/.skyshooter/shooter.yaml
  ./configs/shooter.yaml
  built-in defaults

Examples:
  skyshooter config
  skyshooter config --defaults > ~/.skyshooter/shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, src, err := config.LoadShooter(flagConfig)
	if err != nil {
		fatal(logger, "cannot load configuration", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal(logger, "cannot encode configuration", err)
	}
	fmt.Printf("# source: %s\n", src)
	fmt.Print(string(data))

	if err := cfg.Validate(); err != nil {
		fatal(logger, "configuration is invalid", err)
	}
}
