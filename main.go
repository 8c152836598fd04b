package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/olehluchkiv/zooreport/internal/config"
	"github.com/olehluchkiv/zooreport/internal/intake"
	"github.com/olehluchkiv/zooreport/internal/logging"
)

// errReported marks failures that were already printed to the console.
var errReported = errors.New("already reported")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type cliFlags struct {
	configFile string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	var cf cliFlags
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "zooreport",
		Short: "Name arriving zoo animals and write the arrivals report",
		Long: `zooreport reads a name bank and an arrivals log, gives every recognised
hyena, lion, tiger or bear a name from its species' pool, and writes a report
grouped by species.

With no flags it reads animalNames.txt and arrivingAnimals.txt from the
working directory and writes newAnimals.txt. Settings can also come from a
YAML file (--config), a .env file or ZOO_* environment variables; flags win.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cf.configFile, "config", "", "YAML config file")
	f.StringVar(&cf.cfg.NamesFile, "names", defaults.NamesFile, "name bank file")
	f.StringVar(&cf.cfg.ArrivalsFile, "arrivals", defaults.ArrivalsFile, "arrivals log file")
	f.StringVar(&cf.cfg.ReportFile, "report", defaults.ReportFile, "report output file")
	f.StringVar(&cf.cfg.LogFile, "log-file", defaults.LogFile, "log file path (empty logs to stderr)")
	f.StringVar(&cf.cfg.LogLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	f.Uint64Var(&cf.cfg.Seed, "seed", 0, "seed for name selection (0 picks a random seed)")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(fs *pflag.FlagSet, flags config.Config, cfg *config.Config) {
	if fs.Changed("names") {
		cfg.NamesFile = flags.NamesFile
	}
	if fs.Changed("arrivals") {
		cfg.ArrivalsFile = flags.ArrivalsFile
	}
	if fs.Changed("report") {
		cfg.ReportFile = flags.ReportFile
	}
	if fs.Changed("log-file") {
		cfg.LogFile = flags.LogFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.Seed
	}
}

func run(cmd *cobra.Command, cf cliFlags) error {
	cfg, err := config.Load(cf.configFile)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), cf.cfg, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger, logCleanup, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logCleanup()

	for _, w := range cfg.Warnings {
		logger.Warn("config warning", "warning", w)
	}

	// Setup signal handling with context cancellation
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("run started",
		"names_file", cfg.NamesFile,
		"arrivals_file", cfg.ArrivalsFile,
		"report_file", cfg.ReportFile,
	)

	if _, err := intake.Run(ctx, cfg, logger, cmd.OutOrStdout(), intake.Options{}); err != nil {
		logger.Error("run failed", "error", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}
