package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leopardracer/network-app/internal/chart"
	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/types"
	"github.com/leopardracer/network-app/tests/mocks"
)

func TestEraTracker_RefreshesViewsOnNewEra(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	builder := newFakeBuilder(false)
	views := NewViews(builder)
	defer views.Shutdown()

	opened, err := views.Open(ctx, "", false)
	require.Nil(t, err)
	builder.next(t).done <- buildResult{data: &chart.Data{}}
	waitForStatus(t, views, opened.ID, types.ViewData)

	network := mocks.NewNetworkInterface(t)
	network.On("GetCurrentEra", mock.Anything).Return(&era.Metadata{Index: 5}, nil).Twice()
	network.On("GetCurrentEra", mock.Anything).Return(&era.Metadata{Index: 6}, nil).Once()
	tracker := NewEraTracker(network, views, time.Minute)

	assert.Nil(t, tracker.Current())

	// the first poll only records the era
	require.Nil(t, tracker.pollCurrentEra(ctx))
	require.Nil(t, tracker.pollCurrentEra(ctx))
	assert.Equal(t, era.Key(5), tracker.Current().Index)
	select {
	case <-builder.calls:
		t.Fatal("views must not refresh while the era is unchanged")
	default:
	}

	require.Nil(t, tracker.pollCurrentEra(ctx))
	assert.Equal(t, era.Key(6), tracker.Current().Index)
	builder.next(t).done <- buildResult{data: &chart.Data{}}
	views.Wait()

	state, err := views.Get(opened.ID)
	require.Nil(t, err)
	assert.Equal(t, uint64(2), state.Generation)
}

func TestEraTracker_PollError(t *testing.T) {
	network := mocks.NewNetworkInterface(t)
	network.On("GetCurrentEra", mock.Anything).
		Return(nil, &graphqlclient.RequestError{Operation: "GetLatestEras", Message: "timeout"}).Once()

	views := NewViews(newFakeBuilder(false))
	defer views.Shutdown()
	tracker := NewEraTracker(network, views, time.Minute)

	err := tracker.pollCurrentEra(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, types.RpcError, err.ErrorCode)
	assert.Nil(t, tracker.Current())
}

func TestEraTracker_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	network := mocks.NewNetworkInterface(t)
	network.On("GetCurrentEra", mock.Anything).Return(&era.Metadata{Index: 3}, nil).Maybe()

	views := NewViews(newFakeBuilder(false))
	defer views.Shutdown()
	tracker := NewEraTracker(network, views, 10*time.Millisecond)

	tracker.Start(context.Background())
	require.Eventually(t, func() bool {
		current := tracker.Current()
		return current != nil && current.Index == 3
	}, 5*time.Second, 5*time.Millisecond)
	tracker.Stop()
}
