package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-gym/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the engine configuration",
	Long: `Print the engine configuration as YAML.

Without flags the effective configuration is printed, resolved in this order:
--config, ~/.tetris-gym/configs/engine.yaml, ./configs/engine.yaml, embedded
defaults. The output is a complete file that can be edited and passed back
with --config.

Examples:
  tetris config
  tetris config --defaults > engine.yaml
  tetris config --config ./engine.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults instead of the effective config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadEngine(flagConfigPath)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
