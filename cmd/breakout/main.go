// breakout is a single-screen brick breaker for the terminal, a desktop
// window or remote players over SSH.
//
// Usage:
//
//	breakout                 - Play in the terminal (same as "breakout play")
//	breakout play            - Play in the terminal
//	breakout window          - Play in a desktop window
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Custom config file (.yaml or .toml)
//	--log-file <path>  - Write lifecycle logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// gameID is the registered game every front-end runs.
const gameID = "breakout"

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball to clear a staircase of blocks",
	Long: `Breakout is a single-screen brick breaker. A paddle deflects a ball
to destroy a diagonal staircase of blocks; the game ends when the ball
falls past the paddle or every block is gone.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  breakout
  breakout window --fps 120
  breakout --config ./breakout.toml
  breakout serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write lifecycle logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
