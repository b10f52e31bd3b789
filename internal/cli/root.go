package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cpeele00/employee-benefits/internal/config"
	"github.com/cpeele00/employee-benefits/internal/logging"
)

type options struct {
	configPath string
	dataSource string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

// NewRootCommand wires the benefits CLI.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "benefits",
		Short:         "Employee benefits cost calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.dataSource, "data-source", "", "base URL of the employee/dependent service")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newServeCommand(opts), newCalcCommand(opts))
	return root
}

func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.dataSource != "" {
		cfg.DataSource.URL = o.dataSource
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}
