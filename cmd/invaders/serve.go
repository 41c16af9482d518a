package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.
Each SSH connection gets its own independent game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.invaders/host_key

Examples:
  invaders serve                           # Listen on :23234 with auto-generated key
  invaders serve --ssh :2222               # Listen on port 2222
  invaders serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		appCfg.UI.FPS = flagFPS
	}
	if flagSSHAddr != "" {
		appCfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		appCfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		appCfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:     appCfg.Server.Address,
		HostKeyPath: appCfg.Server.HostKey,
		IdleTimeout: time.Duration(appCfg.Server.IdleTimeoutMinutes) * time.Minute,
		UI:          appCfg.UI,
		NewGame:     func() tui.Game { return invaders.New() },
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting invaders SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
