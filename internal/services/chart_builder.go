package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/leopardracer/network-app/internal/chart"
	"github.com/leopardracer/network-app/internal/clients/networkclient"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/series"
	"github.com/leopardracer/network-app/internal/types"
)

// ErrNoData is returned when the network has no usable stake data for a chart.
var ErrNoData = errors.New("no stake data")

// ChartRequest selects the chart to build.
type ChartRequest struct {
	// Account scopes the chart to one indexer. Empty means the whole network.
	Account string
	Range   era.Range
	// DelegatedToOthers plots what the account receives against what it delegates
	// to other indexers instead of own stake against received delegation.
	DelegatedToOthers bool
	Title             string
	Dimensions        [2]string
}

func (r ChartRequest) mode() string {
	switch {
	case r.DelegatedToOthers:
		return "delegation"
	case r.Account != "":
		return "indexer"
	default:
		return "network"
	}
}

type ChartBuilder struct {
	network networkclient.NetworkInterface
	cfg     *config.ChartConfig
}

func NewChartBuilder(network networkclient.NetworkInterface, cfg *config.ChartConfig) *ChartBuilder {
	return &ChartBuilder{network: network, cfg: cfg}
}

func (b *ChartBuilder) Build(ctx context.Context, req ChartRequest) (*chart.Data, *types.Error) {
	startTime := time.Now()
	data, err := b.build(ctx, req)
	metrics.RecordChartBuildDuration(time.Since(startTime), req.mode(), err != nil && !errors.Is(err, ErrNoData))

	return data, err
}

func (b *ChartBuilder) build(ctx context.Context, req ChartRequest) (*chart.Data, *types.Error) {
	if req.DelegatedToOthers && req.Account == "" {
		return nil, types.NewBadRequestError(errors.New("an account is required to chart delegation to others"))
	}
	rng := req.Range
	if rng == "" {
		rng = era.LastMonth
	}

	meta, err := b.network.GetCurrentEra(ctx)
	if err != nil {
		return nil, classify(err, "failed to get current era")
	}
	window := era.Resolve(rng.Lookback(), *meta)

	var stakes, delegated []series.Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if req.Account != "" {
			stakes, err = b.network.GetIndexerStakesByIndexer(gctx, req.Account, window.AllHexKeys())
		} else {
			stakes, err = b.network.GetIndexerStakesByEras(gctx, window.AllHexKeys())
		}
		return err
	})
	if req.DelegatedToOthers {
		g.Go(func() error {
			var err error
			delegated, err = b.network.GetEraDelegatorIndexers(gctx, req.Account)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(err, "failed to fetch stakes")
	}

	stakePoints := series.Normalize(stakes, window.Keys)
	if len(stakePoints) == 0 {
		log.Ctx(ctx).Debug().
			Str("account", req.Account).
			Int("records", len(stakes)).
			Msg("no usable stake records")
		return nil, types.NewNotFoundError(ErrNoData)
	}

	fit := func(values []math.LegacyDec) []math.LegacyDec {
		return series.Align(series.BucketByDay(values, window.ErasPerBucket), window.Points())
	}

	var (
		one, two []math.LegacyDec
		total    series.TotalSource
	)
	if req.DelegatedToOthers {
		delegatedPoints := series.Normalize(delegated, window.Keys)
		if len(delegatedPoints) == 0 {
			return nil, types.NewNotFoundError(ErrNoData)
		}
		one = fit(series.Select(stakePoints, series.DelegatorStake))
		two = fit(series.Select(delegatedPoints, series.Stake))
		total = series.DerivedTotal{}
	} else {
		one = fit(series.Select(stakePoints, series.IndexerStake))
		two = fit(series.Select(stakePoints, series.DelegatorStake))
		total = series.FetchedTotal{Values: fit(series.Select(stakePoints, series.TotalStake))}
	}

	merged, err := series.Merge(one, two, total)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to merge series: %w", err))
	}
	plot, err := merged.Plot(b.cfg.TokenDecimals)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}

	return chart.New(window, plot, chart.Options{
		Title:      req.Title,
		Dimensions: req.Dimensions,
		Token:      b.cfg.TokenSymbol,
	}), nil
}
