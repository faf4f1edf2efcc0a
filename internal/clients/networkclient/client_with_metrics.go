package networkclient

import (
	"context"
	"time"

	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/series"
)

type NetworkClientWithMetrics struct {
	client NetworkInterface
}

func NewNetworkClientWithMetrics(client NetworkInterface) *NetworkClientWithMetrics {
	return &NetworkClientWithMetrics{client: client}
}

func (c *NetworkClientWithMetrics) GetCurrentEra(ctx context.Context) (*era.Metadata, error) {
	return runWithMetrics("GetCurrentEra", func() (*era.Metadata, error) {
		return c.client.GetCurrentEra(ctx)
	})
}

func (c *NetworkClientWithMetrics) GetIndexerStakesByEras(ctx context.Context, eraIDs []string) ([]series.Record, error) {
	return runWithMetrics("GetIndexerStakesByEras", func() ([]series.Record, error) {
		return c.client.GetIndexerStakesByEras(ctx, eraIDs)
	})
}

func (c *NetworkClientWithMetrics) GetIndexerStakesByIndexer(
	ctx context.Context, indexerID string, eraIDs []string,
) ([]series.Record, error) {
	return runWithMetrics("GetIndexerStakesByIndexer", func() ([]series.Record, error) {
		return c.client.GetIndexerStakesByIndexer(ctx, indexerID, eraIDs)
	})
}

func (c *NetworkClientWithMetrics) GetEraDelegatorIndexers(ctx context.Context, account string) ([]series.Record, error) {
	return runWithMetrics("GetEraDelegatorIndexers", func() ([]series.Record, error) {
		return c.client.GetEraDelegatorIndexers(ctx, account)
	})
}

func runWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordGraphQLLatency(duration, method, err != nil)
	return result, err
}
