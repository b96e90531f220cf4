package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var flagPick bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play through the Bubble Tea frontend",
	Long: `Plays the same map in the alternate screen using Bubble Tea, with a
status line and key help under the map.

Examples:
  tiles tui
  tiles tui --map vault
  tiles tui --pick`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the map from a list")
}

func runTUI(_ *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return errNotTTY
	}

	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	if flagPick {
		return tui.RunPicker(cfg, logger)
	}
	b, err := loadMap(logger)
	if err != nil {
		return err
	}
	return tui.Run(b, cfg, logger)
}
