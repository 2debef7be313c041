package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kleiner-held/internal/audio"
	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/core"
	"github.com/vovakirdan/kleiner-held/internal/games/hero"
	"github.com/vovakirdan/kleiner-held/internal/platform/tui"
	"github.com/vovakirdan/kleiner-held/internal/prefs"
	"github.com/vovakirdan/kleiner-held/internal/spectate"
)

var (
	flagWatch    bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  A/D, Left/Right  - Walk
  Space/Up         - Jump
  E                - Attack
  Q                - Heavy attack
  W                - Use (or buy) a heart
  1 / 2 / 3        - Buy weapon upgrade / lucky charm / invulnerability
  P                - Pause
  H                - Help
  Enter            - Confirm
  M                - Mute
  Ctrl+S           - Screenshot
  Ctrl+C           - Quit

Difficulty options:
  easy    - Enemies have 75% health and damage
  normal  - Configured values
  hard    - Enemies have 150% health and damage

Examples:
  kleinerheld play
  kleinerheld play --difficulty easy
  kleinerheld play --config ./my-levels.yaml --watch
  kleinerheld play --spectate :8090 --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8090)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alt screen owns the terminal, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger("kleinerheld", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(flagConfig)
	if err != nil {
		return err
	}

	settings, err := prefs.Open(prefs.AppName)
	if err != nil {
		logger.Warn("preferences are not persistent", "error", err)
	}

	player := audio.NewPlayer(logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer player.Close()

	game := hero.New(cfg, hero.WithAudio(player), hero.WithLogger(logger))

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Store:  store,
		Audio:  player,
		Prefs:  settings,
		Logger: logger,
		Hold:   time.Duration(cfg.Input.HoldMs) * time.Millisecond,
	}

	if flagSpectate != "" {
		hub, stop := startSpectate(flagSpectate, logger)
		defer stop()
		opts.OnFrame = func() {
			if w := game.World(); w != nil {
				hub.Publish(w.Snapshot())
			}
		}
	}

	if flagWatch {
		stop := watchConfig(&opts, logger)
		defer stop()
	}

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, opts)
}

// startSpectate serves the spectator feed on addr until stop is called.
func startSpectate(addr string, logger *log.Logger) (*spectate.Hub, func()) {
	hub := spectate.NewHub(spectate.WithLogger(logger))
	srv := &http.Server{
		Addr:              addr,
		Handler:           hub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("spectator feed listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectator feed stopped", "error", err)
		}
	}()

	return hub, func() {
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown on exit
		srv.Shutdown(ctx)
	}
}

// watchConfig wires hot reload of the active config file into opts.
func watchConfig(opts *tui.Options, logger *log.Logger) func() {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		logger.Warn("nothing to watch: using the embedded config")
		return func() {}
	}

	watcher, events, err := config.WatchFile(path)
	if err != nil {
		logger.Warn("config watch failed", "path", path, "error", err)
		return func() {}
	}
	logger.Info("watching config", "path", path)

	opts.Reload = events
	opts.LoadConfig = loadGameConfig
	return func() {
		//nolint:errcheck // Best-effort close on exit
		watcher.Close()
	}
}
