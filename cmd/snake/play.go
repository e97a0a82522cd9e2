package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows   - Steer
  Esc      - Pause / resume, quit after game over
  Space    - New game after game over
  Ctrl+C   - Quit at any time

Resizing the terminal pauses the game. Shrinking it so that the snake or
the food falls outside the board ends the round.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play: stdout is not a terminal")
	}

	appCfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme, err := tui.ThemeFromConfig(appCfg)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closer, err := logging.New(appCfg.Log, "snake", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	return tui.Run(cmd.Context(), cfg, theme, logger)
}
