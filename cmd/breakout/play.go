package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  Down/J      - Stop paddle
  Space       - Launch the ball, then pause/resume
  R           - Restart
  S           - Halt (stop the frame loop until restart)
  ?           - Toggle full help
  Q/Ctrl+C    - Quit

Terminals do not report key release, so the paddle stops on its own
shortly after a direction key is no longer repeating.

Examples:
  breakout play
  breakout play --fps 30
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if _, err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// The alternate screen owns stdout, so logs only go to a file
	logger, closeLog, err := newLogger(flagLogFile, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	runErr := tui.Run(game, cfg, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig resolves and validates the configuration and points the
// registered game at the same file.
func loadConfig() (config.BreakoutConfig, error) {
	if flagFPS <= 0 {
		return config.BreakoutConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, fmt.Errorf("load config: %w", err)
	}

	breakout.SetConfigPath(flagConfig)
	return cfg, nil
}
