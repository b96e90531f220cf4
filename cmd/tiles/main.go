// tiles is a terminal tile-grid game: walk a player around a map, bump into
// pickups and pan the camera.
//
// Usage:
//
//	tiles                    - Play in the raw terminal
//	tiles tui                - Play through the Bubble Tea frontend
//	tiles maps               - List available maps
//
// Global flags:
//
//	--map <id>         - Map to play (default: debug)
//	--map-file <path>  - Play a YAML map file instead
//	--map-dir <dir>    - Register every map file in dir
//	--config <path>    - Config YAML (default: ~/.tiles/config.yaml)
//	--log-file <path>  - Write logs here; nothing is logged otherwise
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/game"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/levels/builtin"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/terminal"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

var errNotTTY = errors.New("STDOUT is not a terminal")

// isTerminal is replaced in tests.
var isTerminal = terminal.IsTerminal

var (
	// Global flags
	flagMap      string
	flagMapFile  string
	flagMapDir   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Tiles - walk a tile map in your terminal",
	Long: `Tiles draws a tile map straight to the terminal with ANSI escapes and
moves a player around it, one tick per key press.

Controls (defaults, see --config):
  W/A/S/D, arrows  - Move
  T/F/G/H          - Pan the camera
  R                - Restart the map
  Q, Ctrl+C        - Quit

Examples:
  tiles
  tiles --map vault
  tiles --map-file ./cave.yaml
  tiles tui
  tiles maps`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", builtin.DefaultMap, "Registered map to play")
	rootCmd.PersistentFlags().StringVar(&flagMapFile, "map-file", "", "YAML map file to play (overrides --map)")
	rootCmd.PersistentFlags().StringVar(&flagMapDir, "map-dir", "", "Directory of YAML map files to register")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(mapsCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return errNotTTY
	}

	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	b, err := loadMap(logger)
	if err != nil {
		return err
	}

	tty, err := terminal.NewTTY(os.Stdout)
	if err != nil {
		return err
	}
	keys, err := terminal.NewKeyReader(os.Stdin)
	if err != nil {
		return err
	}
	defer keys.Close()

	restoreVT, err := terminal.EnableVirtualTerminal(os.Stdout)
	if err != nil {
		return err
	}
	defer restoreVT()

	out := terminal.NewDisplay(os.Stdout)
	if err := out.Enter(); err != nil {
		return err
	}
	defer out.Leave()

	g, err := game.NewContext(b, out, tty, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = game.NewSession(g, keys, cfg.KeyMap(), cfg.Runtime(), logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setup loads the config and opens the logger. The returned func closes the
// log file.
func setup() (config.Config, *log.Logger, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	level := cfg.Level()
	if flagLogLevel != "" {
		if level, err = log.ParseLevel(flagLogLevel); err != nil {
			return config.Config{}, nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return config.Config{}, nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
		Level:           level,
	})
	logger.Debug("config loaded", "source", cfg.Source)

	if err := registerMapDir(logger); err != nil {
		closeLog()
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

// registerMapDir registers every map under --map-dir.
func registerMapDir(logger *log.Logger) error {
	if flagMapDir == "" {
		return nil
	}
	all, err := levels.NewLoader(flagMapDir).LoadAll()
	if err != nil {
		return err
	}
	for _, l := range all {
		if registry.Exists(l.ID) {
			return fmt.Errorf("map %q from %s is already registered", l.ID, l.FilePath)
		}
		registry.RegisterLevel(l)
		logger.Debug("map registered", "map", l.ID, "file", l.FilePath)
	}
	return nil
}

// loadMap builds the map chosen by --map-file or --map.
func loadMap(logger *log.Logger) (*levels.Built, error) {
	opt := world.WithLogger(logger)
	if flagMapFile != "" {
		lvl, err := levels.LoadFile(flagMapFile)
		if err != nil {
			return nil, err
		}
		return lvl.Build(opt)
	}
	if !registry.Exists(flagMap) {
		return nil, fmt.Errorf("unknown map %q, run 'tiles maps' to see available maps", flagMap)
	}
	return registry.Create(flagMap, opt)
}
