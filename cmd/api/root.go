package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mosdac/assistant/internal/config"
	"github.com/mosdac/assistant/internal/logging"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "MOSDAC AI help assistant",
		Long: `Rule-based help assistant for the MOSDAC satellite data portal. It answers
questions about missions, locations and data products, and serves the
knowledge graph and system dashboard panels.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")

	serve := newServeCmd(opts)
	cmd.AddCommand(serve, newAskCmd(opts), newRenderCmd())

	// Bare invocation serves.
	cmd.RunE = serve.RunE
	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}
