// invaders is a terminal Space Invaders: move a ship along the bottom edge
// and shoot down an oscillating row of aliens before it descends onto you.
//
// Usage:
//
//	invaders play       - Play in the local terminal
//	invaders serve      - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config)
//	--config <path>   - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `invaders is a terminal rendition of the classic: a ship on the bottom
edge, a row of aliens marching side to side and descending each time it
hits a wall. Clear the row to win; lose a life each time it reaches you.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play

Examples:
  invaders play
  invaders play --fps 30
  invaders serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
