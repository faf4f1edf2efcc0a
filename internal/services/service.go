package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/leopardracer/network-app/internal/clients/consumerhost"
	"github.com/leopardracer/network-app/internal/clients/geoclient"
	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/clients/networkclient"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/types"
)

type Service struct {
	cfg          *config.Config
	Charts       *ChartBuilder
	Views        *Views
	Eras         *EraTracker
	Geo          *GeoService
	HostingPlans *HostingPlanService
}

func NewService(
	cfg *config.Config,
	network networkclient.NetworkInterface,
	geo geoclient.GeoInterface,
	host consumerhost.ConsumerHostInterface,
) *Service {
	charts := NewChartBuilder(network, &cfg.Chart)
	views := NewViews(charts)

	return &Service{
		cfg:          cfg,
		Charts:       charts,
		Views:        views,
		Eras:         NewEraTracker(network, views, cfg.Poller.EraPollingInterval),
		Geo:          NewGeoService(geo),
		HostingPlans: NewHostingPlanService(host, cfg.Chart.TokenDecimals),
	}
}

// Start runs the background era tracking until ctx is done.
func (s *Service) Start(ctx context.Context) {
	s.Eras.Start(ctx)
}

// Shutdown stops the era tracking and waits for in-flight view refreshes.
func (s *Service) Shutdown() {
	s.Eras.Stop()
	s.Views.Shutdown()
}

// classify wraps err into a *types.Error. Failures of the GraphQL services become RPC
// errors, typed errors keep their code.
func classify(err error, msg string) *types.Error {
	if err == nil {
		return nil
	}

	wrapped := fmt.Errorf("%s: %w", msg, err)

	var typed *types.Error
	if errors.As(err, &typed) {
		return types.NewError(typed.StatusCode, typed.ErrorCode, wrapped)
	}
	if graphqlclient.IsRequestError(err) {
		return types.NewRpcError(wrapped)
	}
	return types.NewInternalServiceError(wrapped)
}
