package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/games/hero"
)

var (
	flagLevelsDump    bool
	flagLevelsDefault bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the campaign levels",
	Long: `List every level of the active config with the defaults filled in.
A level that cannot be played is reported with its error.

Examples:
  kleinerheld levels
  kleinerheld levels --config ./my-levels.yaml
  kleinerheld levels --dump --difficulty hard
  kleinerheld levels --default > ~/.kleinerheld/configs/kleinerheld.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	addGameFlags(levelsCmd)
	levelsCmd.Flags().BoolVar(&flagLevelsDump, "dump", false, "Print the effective config as YAML")
	levelsCmd.Flags().BoolVar(&flagLevelsDefault, "default", false, "Print the built-in default config")
}

func runLevels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagLevelsDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig(flagConfig)
	if err != nil {
		return err
	}

	if flagLevelsDump {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	if path := config.ResolvePath(flagConfig); path != "" {
		fmt.Fprintf(out, "Config: %s\n\n", path)
	} else {
		fmt.Fprint(out, "Config: built-in\n\n")
	}
	return printLevels(out, &cfg)
}

func printLevels(out io.Writer, cfg *config.GameConfig) error {
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("no levels configured")
	}

	fmt.Fprintf(out, "  %-3s  %-20s  %-6s  %-7s  %-8s  %-7s  %s\n", "#", "Name", "Width", "Enemies", "Enemy", "Boss", "Boss x")
	fmt.Fprintf(out, "  %-3s  %-20s  %-6s  %-7s  %-8s  %-7s  %s\n", "-", "----", "-----", "-------", "-----", "----", "------")

	var invalid int
	for i := range cfg.Levels {
		spec, err := hero.ResolveLevel(cfg, i)
		if err != nil {
			invalid++
			fmt.Fprintf(out, "  %-3d  %v\n", i+1, err)
			continue
		}
		fmt.Fprintf(out, "  %-3d  %-20s  %-6.0f  %-7d  %-8s  %-7s  %.0f\n",
			i+1, spec.Name, spec.Width, spec.Enemies, spec.Roster.Enemy, spec.Roster.Boss, spec.BossX)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d levels are invalid", invalid, len(cfg.Levels))
	}
	return nil
}
