package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sumitsaluja27/n8n-Workflow/internal/config"
	"github.com/sumitsaluja27/n8n-Workflow/internal/logging"
	"github.com/sumitsaluja27/n8n-Workflow/internal/mcp"
	"github.com/sumitsaluja27/n8n-Workflow/internal/repository"
	"github.com/sumitsaluja27/n8n-Workflow/internal/services"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:     "translate-workflows",
		Short:   "Add missing description and translations fields to workflow JSON files",
		Version: version,
		Args:    cobra.NoArgs,
		// Per-file failures are printed as they happen and never fail the command.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, configFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			store := repository.NewFileRecordStore(cfg.Workflows.Dir, cfg.Workflows.Suffix)
			transformer := services.NewTransformer(store, cfg.Translations.Locale, logger)
			walker := services.NewWalker(store, transformer, cmd.OutOrStdout(), logger)

			_, err = walker.Run(cmd.Context())
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (default: optional ./config.yaml or ./config/config.yaml)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newMCPCmd(&configFile))
	return cmd
}

func newMCPCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the workflow transform as MCP tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, *configFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("Starting MCP server", "dir", cfg.Workflows.Dir, "locale", cfg.Translations.Locale)
			return mcp.NewServer(cfg, logger, version).ServeStdio()
		},
	}
}

func setup(cmd *cobra.Command, configFile string) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Configuration loaded",
		"dir", cfg.Workflows.Dir,
		"suffix", cfg.Workflows.Suffix,
		"locale", cfg.Translations.Locale,
	)
	return cfg, logger, nil
}
