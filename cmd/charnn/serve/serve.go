// Package servecmder provides the serve command for the HTTP inference server.
package servecmder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/api"
	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/predictor"
)

const serveLongDesc string = `Serve predictions from a trained run over HTTP.

Endpoints:
  GET  /test    liveness check, returns {"server":"works"}
  GET  /ping    returns "pong"
  GET  /info    the run ID and categories being served
  POST /        {"line": "Satoshi"} returns the top 3 predictions

Uses the latest recorded run unless --run is given.`

const serveShortDesc string = "Run the inference server"

var flagKeys = []string{
	config.FlagListen,
	config.FlagOutputDir,
	config.FlagStorageProvider,
	config.FlagSQLite,
}

type ServeCommander struct {
	cfg    *config.Config
	logger *slog.Logger

	runID string

	listen, outputDir, storageProvider, sqlitePath string
}

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.cfg, err = cmdutil.ResolveConfig(cmd, flagKeys...)
			if err != nil {
				return err
			}
			cmder.logger = cmdutil.NewLogger(cmd)

			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cmder.runID, cmdutil.FlagRun, "r", "", "Run ID to serve (default: latest run)")
	config.AddStringFlag(cmd, config.Registry, config.FlagListen, &cmder.listen)
	config.AddStringFlag(cmd, config.Registry, config.FlagOutputDir, &cmder.outputDir)
	config.AddStringFlag(cmd, config.Registry, config.FlagStorageProvider, &cmder.storageProvider)
	config.AddStringFlag(cmd, config.Registry, config.FlagSQLite, &cmder.sqlitePath)

	return cmd
}

// newServer loads the requested run and builds the API server for it.
// The registry is checked against the model before anything listens.
func (c *ServeCommander) newServer(ctx context.Context) (*api.Server, error) {
	store, err := cmdutil.OpenRunStore(c.cfg, c.logger)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	bundle, err := cmdutil.LoadRun(ctx, c.cfg, store, c.runID)
	if err != nil {
		return nil, err
	}

	p, err := predictor.New(bundle.Model, bundle.Registry, bundle.Alphabet)
	if err != nil {
		return nil, err
	}

	return api.NewServer(api.Config{
		ListenAddr: c.cfg.Serve.Listen,
		RunID:      bundle.RunID,
	}, p, c.logger)
}

func (c *ServeCommander) run(ctx context.Context) error {
	server, err := c.newServer(ctx)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
		return server.Shutdown()
	}
}
