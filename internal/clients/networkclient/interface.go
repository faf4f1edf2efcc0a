package networkclient

import (
	"context"

	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/series"
)

//go:generate mockery --name=NetworkInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_network_client.go

// NetworkInterface reads era metadata and stake aggregates from the network's
// indexing service.
type NetworkInterface interface {
	GetCurrentEra(ctx context.Context) (*era.Metadata, error)
	GetIndexerStakesByEras(ctx context.Context, eraIDs []string) ([]series.Record, error)
	GetIndexerStakesByIndexer(ctx context.Context, indexerID string, eraIDs []string) ([]series.Record, error)
	// GetEraDelegatorIndexers returns one record per era with Stake set to the
	// amount the account delegated to other indexers.
	GetEraDelegatorIndexers(ctx context.Context, account string) ([]series.Record, error)
}
