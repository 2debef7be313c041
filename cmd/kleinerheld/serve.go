package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kleiner-held/internal/audio"
	"github.com/vovakirdan/kleiner-held/internal/games/hero"
	"github.com/vovakirdan/kleiner-held/internal/platform/tui"
	"github.com/vovakirdan/kleiner-held/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own world without sound.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.kleinerheld/host_key

Examples:
  kleinerheld serve                           # Listen on :23234 with auto-generated key
  kleinerheld serve --ssh :2222               # Listen on port 2222
  kleinerheld serve --host-key ./my_host_key  # Use specific host key
  kleinerheld serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("kleinerheld-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(flagConfig)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS
	srvCfg.Hold = time.Duration(cfg.Input.HoldMs) * time.Millisecond
	srvCfg.NewGame = func(user string) registry.Game {
		return hero.New(cfg,
			hero.WithAudio(audio.Silent{}),
			hero.WithLogger(logger.With("user", user)),
		)
	}

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Kleiner Held SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
