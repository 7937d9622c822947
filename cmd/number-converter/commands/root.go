package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"number-converter/internal/app"
	"number-converter/internal/config"
	"number-converter/internal/logger"
)

type rootOptions struct {
	configPath string
	logLevel   string

	cfg config.Config
	log logger.Logger
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "number-converter",
		Short:        "Convert numbers between decimal, binary and hexadecimal",
		Version:      app.AppVersion,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "config file (YAML)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(convertCmd(opts), modesCmd())
	return root
}

func (o *rootOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	o.cfg = cfg
	o.log = logger.New(cfg.Level(), cfg.JSONLogs)
	return nil
}

func runGUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(opts.cfg, opts.log)
	if err != nil {
		opts.log.Error("CLI", err, nil)
		return err
	}
	return application.Run(ctx)
}
