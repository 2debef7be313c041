package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kleiner-held/internal/prefs"
)

var muteCmd = &cobra.Command{
	Use:   "mute [on|off|toggle|status]",
	Short: "Manage the sound preference",
	Long: `Show or change whether the game starts muted. The same setting is
toggled in game with M.

Examples:
  kleinerheld mute          # same as status
  kleinerheld mute on
  kleinerheld mute toggle`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "toggle", "status"},
	RunE:      runMute,
}

func runMute(cmd *cobra.Command, args []string) error {
	settings, err := prefs.Open(prefs.AppName)
	if err != nil {
		return err
	}

	action := "status"
	if len(args) == 1 {
		action = args[0]
	}
	return applyMute(cmd.OutOrStdout(), settings, action)
}

func applyMute(out io.Writer, settings *prefs.Store, action string) error {
	var err error
	switch action {
	case "on":
		err = settings.SetMuted(true)
	case "off":
		err = settings.SetMuted(false)
	case "toggle":
		_, err = settings.ToggleMuted()
	case "status":
	default:
		return fmt.Errorf("unknown mute action %q (on, off, toggle, status)", action)
	}
	if err != nil {
		return err
	}

	state := "on"
	if settings.Muted() {
		state = "muted"
	}
	fmt.Fprintf(out, "Sound: %s\n", state)
	return nil
}
