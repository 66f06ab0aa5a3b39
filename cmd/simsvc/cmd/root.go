package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"hexbalance/internal/balance"
	"hexbalance/internal/config"
	"hexbalance/internal/logging"
)

var (
	configDir string
	logFormat string
	logLevel  string

	settings *config.Env
	logger   = slog.Default()
	fs       = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "simsvc",
	Short: "Monte Carlo balance simulator for the hex battle game",
	Long: `simsvc plays automated matches between the factions of a unit catalog
and reports how often each one wins.

Settings can also come from the environment (or a .env file):
  HEXSIM_CONFIG    config directory (default assets)
  HEXSIM_WORKERS   worker count for batch runs
  HEXSIM_SEED      base random seed
  LOG_FORMAT       text or json
  LOG_LEVEL        debug, info, warn or error
Flags take precedence over the environment.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	settings = e
	flags := cmd.Flags()
	if !flags.Changed("config") {
		configDir = e.ConfigDir
	}
	if !flags.Changed("log-format") {
		logFormat = e.LogFormat
	}
	if !flags.Changed("log-level") {
		logLevel = e.LogLevel
	}
	logger = logging.New(logFormat, logLevel, cmd.ErrOrStderr())
	if e.DotEnv {
		logger.Debug("applied .env file")
	}
	return nil
}

// newDriver loads the catalog from the config directory.
func newDriver() (*balance.Driver, error) {
	cat, err := config.LoadAll(fs, configDir)
	if err != nil {
		return nil, fmt.Errorf("load config from %s: %w", configDir, err)
	}
	logger.Debug("catalog loaded", "dir", configDir,
		"units", len(cat.Units.Units), "factions", len(cat.Factions.Factions))
	return balance.NewDriver(cat, logger), nil
}

// Execute runs the root command; an interrupt cancels a running batch.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configDir, "config", "assets", "directory holding units.yaml, factions.yaml and sim.yaml")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}
