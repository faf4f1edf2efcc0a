package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/leopardracer/network-app/internal/api"
	"github.com/leopardracer/network-app/internal/clients/consumerhost"
	"github.com/leopardracer/network-app/internal/clients/geoclient"
	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/observability/tracing"
	"github.com/leopardracer/network-app/internal/services"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the network app API server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	network := newNetworkClient(cfg)
	geo := geoclient.NewClient(graphqlclient.New(&cfg.TopIndexers))
	host := consumerhost.NewClient(&cfg.ConsumerHost)

	service := services.NewService(cfg, network, geo, host)

	// initialize metrics with the metrics port from config
	metrics.Init(cfg.Metrics.GetMetricsPort())

	service.Start(ctx)
	defer service.Shutdown()

	server := api.New(&cfg.Server, service)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return <-errCh
}
