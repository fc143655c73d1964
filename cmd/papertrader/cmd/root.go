package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rustyeddy/papertrader/config"
	"github.com/rustyeddy/papertrader/internal/logging"
	"github.com/rustyeddy/papertrader/journal"
	"github.com/rustyeddy/papertrader/sim"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrader",
	Short: "A paper stock trading simulator",
	Long: `Papertrader is a single-user stock trading simulator.

It keeps a cash balance, share holdings and a transaction history against a
small simulated market whose prices drift at random. The portfolio is saved
to a plain text file between runs.

Run without a subcommand to start the interactive trading menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runTrade,
}

var (
	cfgFile   string
	storePath string
	logLevel  string

	cfg       *config.Config
	logger    = logging.Discard()
	logCloser io.Closer
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer closeLogger()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "portfolio file (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides logging.level)")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if cfgFile != "" {
		var err error
		if c, err = config.LoadFromFile(cfgFile); err != nil {
			return err
		}
	}
	if storePath != "" {
		c.Store.Path = storePath
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	cfg = c

	closeLogger()
	logger, logCloser = logging.New(cfg.Logging)
	slog.SetDefault(logger)
	return nil
}

func closeLogger() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// openEngine starts a session from the loaded settings. The returned
// function closes the journal.
func openEngine() (*sim.Engine, func(), error) {
	j, err := journal.FromConfig(cfg.Journal)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	e, err := sim.NewEngine(cfg, sim.WithJournal(j), sim.WithLogger(logger))
	if err != nil {
		j.Close()
		return nil, nil, fmt.Errorf("start engine: %w", err)
	}
	return e, func() {
		if err := e.Close(); err != nil {
			logger.Warn("close journal failed", "err", err)
		}
	}, nil
}
