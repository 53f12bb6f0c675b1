// tetris drives the Tetris reinforcement-learning environments from the
// command line.
//
// Usage:
//
//	tetris list                 - List registered environments
//	tetris rollout <env>        - Play episodes with a random agent
//	tetris config               - Print the effective engine configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible episodes
//	--config <path>      - Engine config file (default: search path, then embedded)
//	--log-level <level>  - debug, info, warn or error (default: info)
//
// TETRIS_CONFIG and TETRIS_LOG_LEVEL, from the environment or a .env file in
// the working directory, stand in for --config and --log-level.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import envs to register the variants
	_ "github.com/vovakirdan/tetris-gym/internal/envs"
)

var (
	// Global flags
	flagSeed       int64
	flagConfigPath string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris environments for reinforcement learning",
	Long: `tetris exposes deterministic Tetris episodes through a reset/step/reward
contract for automated agents.

Available commands:
  list     - Show all registered environments
  rollout  - Run episodes with a uniformly random agent
  config   - Print the engine configuration

Examples:
  tetris list
  tetris rollout TetrisA-v3 --steps 10000
  tetris rollout TetrisB-v1 --envs 8 --seed 42
  tetris config --defaults`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rolloutCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env defaults and configures the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", "error", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv("TETRIS_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfigPath = v
	}
	if v := os.Getenv("TETRIS_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}
