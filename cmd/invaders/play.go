package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Fire
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  invaders play
  invaders play --fps 30
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		appCfg.UI.FPS = flagFPS
	}

	// Get terminal size, with a sane fallback for non-tty stdout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appCfg.UI.FPS,
	}

	if err := tui.Run(invaders.New(), cfg, appCfg.UI); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
