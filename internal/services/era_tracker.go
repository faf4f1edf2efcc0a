package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/clients/networkclient"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/types"
	"github.com/leopardracer/network-app/internal/utils/poller"
)

// EraTracker polls the current era and refreshes every open view when a new era
// starts.
type EraTracker struct {
	network  networkclient.NetworkInterface
	views    *Views
	interval time.Duration

	mu      sync.RWMutex
	current *era.Metadata
	poller  *poller.Poller
}

func NewEraTracker(network networkclient.NetworkInterface, views *Views, interval time.Duration) *EraTracker {
	return &EraTracker{
		network:  network,
		views:    views,
		interval: interval,
	}
}

func (t *EraTracker) Start(ctx context.Context) {
	t.poller = poller.NewPoller(
		"current_era",
		t.interval,
		metrics.RecordPollerDuration("current_era", t.pollCurrentEra),
	)
	go t.poller.Start(ctx)
}

func (t *EraTracker) Stop() {
	if t.poller != nil {
		t.poller.Stop()
	}
}

// Current returns the last polled era, nil before the first successful poll.
func (t *EraTracker) Current() *era.Metadata {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *EraTracker) pollCurrentEra(ctx context.Context) *types.Error {
	meta, err := t.network.GetCurrentEra(ctx)
	if err != nil {
		return classify(err, "failed to get current era")
	}
	metrics.RecordCurrentEra(uint64(meta.Index))

	t.mu.Lock()
	prev := t.current
	t.current = meta
	t.mu.Unlock()

	if prev == nil || prev.Index == meta.Index {
		return nil
	}

	log.Ctx(ctx).Info().
		Stringer("previous_era", prev.Index).
		Stringer("current_era", meta.Index).
		Msg("new era started, refreshing chart views")
	t.views.RefreshAll(ctx)

	return nil
}
