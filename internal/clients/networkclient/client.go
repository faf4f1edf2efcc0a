package networkclient

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/series"
)

type NetworkClient struct {
	gql graphqlclient.Executor
}

func NewNetworkClient(gql graphqlclient.Executor) *NetworkClient {
	return &NetworkClient{gql: gql}
}

// GetCurrentEra derives the current era's metadata from the two most recent eras.
// The period is the duration of the last completed era. Without one the era is
// assumed to last a day, the fallback the window resolver applies.
func (c *NetworkClient) GetCurrentEra(ctx context.Context) (*era.Metadata, error) {
	var resp latestErasResponse
	if err := c.gql.Do(ctx, "GetLatestEras", getLatestErasQuery, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Eras == nil || len(resp.Eras.Nodes) == 0 {
		return nil, fmt.Errorf("no era found")
	}

	current := resp.Eras.Nodes[0]
	index, err := era.ParseKey(current.ID)
	if err != nil {
		return nil, err
	}
	start, err := parseTime(current.StartTime)
	if err != nil {
		return nil, fmt.Errorf("era %s: %w", current.ID, err)
	}

	meta := &era.Metadata{Index: index, EstimatedEndTime: start.Add(era.Day)}
	if len(resp.Eras.Nodes) < 2 {
		return meta, nil
	}

	prev := resp.Eras.Nodes[1]
	if prev.EndTime == nil {
		return nil, fmt.Errorf("era %s has no end time", prev.ID)
	}
	prevStart, err := parseTime(prev.StartTime)
	if err != nil {
		return nil, fmt.Errorf("era %s: %w", prev.ID, err)
	}
	prevEnd, err := parseTime(*prev.EndTime)
	if err != nil {
		return nil, fmt.Errorf("era %s: %w", prev.ID, err)
	}
	if period := prevEnd.Sub(prevStart); period > 0 {
		meta.Period = period
		meta.EstimatedEndTime = start.Add(period)
	}

	return meta, nil
}

func (c *NetworkClient) GetIndexerStakesByEras(ctx context.Context, eraIDs []string) ([]series.Record, error) {
	var resp indexerStakesResponse
	vars := map[string]any{"eraIds": eraIDs}
	if err := c.gql.Do(ctx, "GetIndexerStakesByEras", getIndexerStakesByErasQuery, vars, &resp); err != nil {
		return nil, err
	}
	return resp.toRecords()
}

func (c *NetworkClient) GetIndexerStakesByIndexer(
	ctx context.Context, indexerID string, eraIDs []string,
) ([]series.Record, error) {
	var resp indexerStakesResponse
	vars := map[string]any{"indexerId": indexerID, "eraIds": eraIDs}
	if err := c.gql.Do(ctx, "GetIndexerStakesByIndexer", getIndexerStakesByIndexerQuery, vars, &resp); err != nil {
		return nil, err
	}
	return resp.toRecords()
}

func (c *NetworkClient) GetEraDelegatorIndexers(ctx context.Context, account string) ([]series.Record, error) {
	var resp eraDelegatorIndexersResponse
	vars := map[string]any{"account": account}
	if err := c.gql.Do(ctx, "GetEraDelegatorIndexers", getEraDelegatorIndexersQuery, vars, &resp); err != nil {
		return nil, err
	}
	if resp.EraDelegatorIndexers == nil {
		return []series.Record{}, nil
	}

	records := make([]series.Record, 0, len(resp.EraDelegatorIndexers.Nodes))
	for _, node := range resp.EraDelegatorIndexers.Nodes {
		total, err := parseOrZero(node.TotalStake)
		if err != nil {
			return nil, fmt.Errorf("era %d: %w", node.Era, err)
		}
		self, err := parseOrZero(node.SelfStake)
		if err != nil {
			return nil, fmt.Errorf("era %d: %w", node.Era, err)
		}

		stake := total.Sub(self)
		if stake.IsNegative() {
			log.Ctx(ctx).Warn().
				Uint64("era", node.Era).
				Str("total_stake", total.String()).
				Str("self_stake", self.String()).
				Msg("self stake exceeds total stake, clamping delegated stake to zero")
			stake = math.LegacyZeroDec()
		}

		sums := series.ZeroSums()
		sums.Stake = stake
		records = append(records, series.Record{
			Keys: []string{era.Key(node.Era).Hex()},
			Sum:  &sums,
		})
	}

	return records, nil
}

func (r indexerStakesResponse) toRecords() ([]series.Record, error) {
	if r.IndexerStakes == nil {
		return []series.Record{}, nil
	}

	records := make([]series.Record, 0, len(r.IndexerStakes.GroupedAggregates))
	for _, agg := range r.IndexerStakes.GroupedAggregates {
		record := series.Record{Keys: agg.Keys}
		if agg.Sum != nil {
			var (
				sums series.Sums
				err  error
			)
			if sums.DelegatorStake, err = series.ParseSum(agg.Sum.DelegatorStake.Raw()); err != nil {
				return nil, fmt.Errorf("era %v delegator stake: %w", agg.Keys, err)
			}
			if sums.IndexerStake, err = series.ParseSum(agg.Sum.IndexerStake.Raw()); err != nil {
				return nil, fmt.Errorf("era %v indexer stake: %w", agg.Keys, err)
			}
			if sums.TotalStake, err = series.ParseSum(agg.Sum.TotalStake.Raw()); err != nil {
				return nil, fmt.Errorf("era %v total stake: %w", agg.Keys, err)
			}
			record.Sum = &sums
		}
		records = append(records, record)
	}

	return records, nil
}

func parseOrZero(a Amount) (math.LegacyDec, error) {
	if a.Raw() == nil || *a.Raw() == "" {
		return math.LegacyZeroDec(), nil
	}
	d, err := series.ParseDec(*a.Raw())
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("invalid amount %q: %w", *a.Raw(), err)
	}
	return d, nil
}
