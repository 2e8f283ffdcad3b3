package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	apiserver "github.com/agri-econ/farm-income-planner/internal/api_server"
	"github.com/agri-econ/farm-income-planner/internal/config"
	"github.com/agri-econ/farm-income-planner/pkg/log"
	"github.com/agri-econ/farm-income-planner/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the farm income planner api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Infow("Starting API service", "version", version.Get().String())
		defer zap.S().Info("API service stopped")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		apiListener, err := newListener(cfg.Service.Address)
		if err != nil {
			return fmt.Errorf("creating api listener: %w", err)
		}
		metricsListener, err := newListener(cfg.Service.MetricsAddress)
		if err != nil {
			_ = apiListener.Close()
			return fmt.Errorf("creating metrics listener: %w", err)
		}

		// the first server to stop takes the other one down with it
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer cancel()
			return apiserver.New(cfg, apiListener).Run(gctx)
		})
		g.Go(func() error {
			defer cancel()
			return apiserver.NewMetricServer(cfg.Service.MetricsAddress, metricsListener).Run(gctx)
		})

		if err := g.Wait(); err != nil {
			zap.S().Errorw("server stopped with error", "error", err)
			return err
		}
		return nil
	},
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
