// snake is a terminal Snake game, playable locally or over SSH.
//
// Usage:
//
//	snake play      - Play in this terminal
//	snake serve     - Start SSH server for remote play
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible food placement
//	--config <path>  - Use a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Steer a growing snake around the board, eat food, and avoid the
walls and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
