package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	configFile string
	logLevel   string
	theme      string
	noColor    bool
	metricsOut string
	speedMs    int
	width      int
)

// app is the state shared by every command, built before any of them runs.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	registry   *catalog.Registry
	collectors *metrics.Collectors
}

var cli app

func main() {
	rootCmd := &cobra.Command{
		Use:               "algoviz",
		Short:             "step-by-step algorithm visualizer",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if metricsOut == "" {
				return nil
			}
			return cli.collectors.WriteFile(metricsOut)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunMenu(cli.registry, cli.cfg.Speed())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	pf.BoolVar(&noColor, "no-color", false, "disable colour output")
	pf.StringVar(&metricsOut, "metrics-out", "", "write prometheus metrics to this file on exit")
	pf.IntVar(&speedMs, "speed", config.DefaultSpeedMs, "autoplay interval in milliseconds")
	pf.IntVar(&width, "width", config.DefaultWidth, "render width in columns")

	rootCmd.AddCommand(
		listCmd(),
		runCmd(),
		playCmd(),
		exportCmd(),
		plotCmd(),
		statsCmd(),
		sweepCmd(),
		explainCmd(),
		presetsCmd(),
		validateCmd(),
		scriptCmd(),
		tuiCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config file and applies flag overrides, only where a
// flag was set explicitly.
func setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("width") {
		cfg.Width = width
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	viz.SetTheme(cfg.Theme)

	cli.cfg = cfg
	cli.logger = logging.New(level)
	cli.collectors = metrics.NewCollectors()
	cli.registry = catalog.NewRegistry(
		catalog.WithLogger(cli.logger),
		catalog.WithRecorder(cli.collectors),
	)
	return nil
}
