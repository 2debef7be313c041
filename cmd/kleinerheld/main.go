// kleinerheld is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	kleinerheld play                 - Play in this terminal
//	kleinerheld serve                - Start SSH server for remote play
//	kleinerheld simulate             - Run a headless autopilot game
//	kleinerheld scores               - Show recorded runs
//	kleinerheld levels               - Show the campaign
//	kleinerheld mute on|off|toggle   - Manage the sound preference
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.kleinerheld/runs.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/games/hero"
	"github.com/vovakirdan/kleiner-held/internal/registry"
	"github.com/vovakirdan/kleiner-held/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Shared by play, serve and simulate
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kleinerheld",
	Short: "Kleiner Held - a little hero's side-scroller in your terminal",
	Long: `Kleiner Held is a side-scrolling platformer played in the terminal.
Walk right, fight lizards, skeletons and minotaurs, collect their coins,
spend them on upgrades and defeat the boss guarding each level's treasure.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run a headless autopilot game
  scores    - View recorded runs
  levels    - Show the campaign levels
  mute      - Manage the sound preference

Examples:
  kleinerheld play
  kleinerheld play --difficulty hard --watch
  kleinerheld play --spectate :8090
  kleinerheld serve --ssh :2222
  kleinerheld simulate --seconds 120 --seed 7
  kleinerheld scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kleinerheld/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(muteCmd)
}

// addGameFlags registers the config and difficulty flags on a command.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// newLogger builds the command logger. An explicit --log-file always
// wins; otherwise fallback receives the output. The returned closer
// releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadGameConfig reads the game config from path and applies the
// difficulty flag.
func loadGameConfig(path string) (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}
	cfg, err := config.LoadGame(path)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the runs database, logging and continuing without
// one when it is unavailable.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// gameTitle returns the display name of the registered game.
func gameTitle() string {
	g, err := registry.Create(hero.GameID)
	if err != nil {
		return hero.GameID
	}
	return g.Title()
}
