package commands

import (
	"github.com/spf13/cobra"

	"github.com/faultbook/faultbook/demo"
	"github.com/faultbook/faultbook/logbook"
	"github.com/faultbook/faultbook/samples"
)

var (
	configPath  string
	logLevel    string
	development bool

	cfg      demo.Config
	log      *logbook.Logger
	registry *demo.Registry
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "faultbook",
		Short:         "A field guide to Go failure modes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = demo.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if development {
				cfg.Logging.Development = true
			}
			log, err = logbook.New(logbook.Options{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
			})
			if err != nil {
				return err
			}
			registry = samples.All()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./faultbook.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&development, "dev", false, "human-readable console logging")

	root.AddCommand(listCmd(), runCmd(), serveCmd())
	return root
}
