package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Flags override the config file and SNAKE_* environment variables.

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (0 = never)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyServeFlags(cmd, &cfg.Server)

	theme, err := tui.ThemeFromConfig(cfg)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, "snake-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMinutes) * time.Minute,
		Theme:       theme,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// applyServeFlags copies explicitly set flags over the loaded config.
func applyServeFlags(cmd *cobra.Command, srv *config.ServerConfig) {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		srv.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		srv.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		srv.IdleTimeoutMinutes = flagIdleTimeout
	}
}
