package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leopardracer/network-app/internal/clients/consumerhost"
	"github.com/leopardracer/network-app/internal/types"
	"github.com/leopardracer/network-app/tests/mocks"
)

var projectIndexers = []consumerhost.ProjectIndexer{
	{Indexer: "0xa", Price: "1000000000000000", MaxTime: 86400},
	{Indexer: "0xb", Price: "5000000000000000", MaxTime: 1814400},
	{Indexer: "0xc", Price: "not-a-number", MaxTime: 100},
}

func TestMatchedIndexers(t *testing.T) {
	ctx := context.Background()

	t.Run("counts indexers at or below the price", func(t *testing.T) {
		host := mocks.NewConsumerHostInterface(t)
		host.On("GetProjectIndexers", mock.Anything, "42", "QmDeployment").Return(projectIndexers, nil).Times(3)
		svc := NewHostingPlanService(host, 18)

		matched, err := svc.MatchedIndexers(ctx, "42", "QmDeployment", "2")
		require.Nil(t, err)
		assert.Equal(t, 1, matched.Count)
		assert.Equal(t, "0xa", matched.Indexers[0].Indexer)

		matched, err = svc.MatchedIndexers(ctx, "42", "QmDeployment", "5")
		require.Nil(t, err)
		assert.Equal(t, 2, matched.Count)

		matched, err = svc.MatchedIndexers(ctx, "42", "QmDeployment", "0.5")
		require.Nil(t, err)
		assert.Zero(t, matched.Count)
	})

	t.Run("no price matches nothing", func(t *testing.T) {
		svc := NewHostingPlanService(mocks.NewConsumerHostInterface(t), 18)

		matched, err := svc.MatchedIndexers(ctx, "42", "QmDeployment", "")
		require.Nil(t, err)
		assert.Zero(t, matched.Count)
		assert.Empty(t, matched.Indexers)
	})

	t.Run("consumer host failure matches nothing", func(t *testing.T) {
		host := mocks.NewConsumerHostInterface(t)
		host.On("GetProjectIndexers", mock.Anything, "42", "").Return(nil, errors.New("down")).Once()

		matched, err := NewHostingPlanService(host, 18).MatchedIndexers(ctx, "42", "", "10")
		require.Nil(t, err)
		assert.Zero(t, matched.Count)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewHostingPlanService(mocks.NewConsumerHostInterface(t), 18)

		_, err := svc.MatchedIndexers(ctx, "", "QmDeployment", "1")
		require.NotNil(t, err)
		assert.Equal(t, types.BadRequest, err.ErrorCode)

		_, err = svc.MatchedIndexers(ctx, "42", "QmDeployment", "abc")
		require.NotNil(t, err)
		assert.Equal(t, types.BadRequest, err.ErrorCode)
	})
}

func TestChannelLimits(t *testing.T) {
	host := mocks.NewConsumerHostInterface(t)
	host.On("GetChannelLimit", mock.Anything).
		Return(&consumerhost.ChannelLimit{ChannelMaxNum: 20, ChannelMinAmount: 50, ChannelMinDays: 7}, nil).Once()
	host.On("GetChannelLimit", mock.Anything).Return(nil, errors.New("down")).Once()
	svc := NewHostingPlanService(host, 18)

	assert.Equal(t, ChannelLimits{MaxNum: 20, MinAmount: 50, MinExpiration: 7 * 24 * time.Hour}, svc.ChannelLimits(context.Background()))
	assert.Equal(t, DefaultChannelLimits, svc.ChannelLimits(context.Background()))
}

func TestCreateHostingPlan(t *testing.T) {
	ctx := context.Background()
	req := PlanRequest{
		Account:    "0xconsumer",
		ProjectID:  "42",
		Deployment: "QmDeployment",
		Price:      "2",
		Maximum:    3,
	}

	t.Run("creates with the longest indexer expiration", func(t *testing.T) {
		host := mocks.NewConsumerHostInterface(t)
		host.On("ListHostingPlans", mock.Anything, "0xconsumer").
			Return([]consumerhost.HostingPlan{{ID: 1, Deployment: consumerhost.HostingPlanDeployment{Deployment: "QmOther"}}}, nil).Once()
		host.On("GetChannelLimit", mock.Anything).
			Return(&consumerhost.ChannelLimit{ChannelMaxNum: 20, ChannelMinAmount: 50, ChannelMinDays: 7}, nil).Once()
		host.On("GetProjectIndexers", mock.Anything, "42", "QmDeployment").Return(projectIndexers, nil).Once()
		host.On("CreateHostingPlan", mock.Anything, consumerhost.HostingPlanParams{
			ID:           "0",
			DeploymentID: "QmDeployment",
			Price:        "2000000000000000",
			Maximum:      3,
			Expiration:   1814400,
		}).Return(&consumerhost.HostingPlan{ID: 2}, nil).Once()

		plan, created, err := NewHostingPlanService(host, 18).CreateHostingPlan(ctx, req)
		require.Nil(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(2), plan.ID)
	})

	t.Run("expiration is at least the channel minimum", func(t *testing.T) {
		host := mocks.NewConsumerHostInterface(t)
		host.On("ListHostingPlans", mock.Anything, "0xconsumer").Return([]consumerhost.HostingPlan{}, nil).Once()
		host.On("GetChannelLimit", mock.Anything).Return(nil, errors.New("down")).Once()
		host.On("GetProjectIndexers", mock.Anything, "42", "QmDeployment").
			Return([]consumerhost.ProjectIndexer{{Indexer: "0xa", Price: "1", MaxTime: 86400}}, nil).Once()
		host.On("CreateHostingPlan", mock.Anything, mock.MatchedBy(func(p consumerhost.HostingPlanParams) bool {
			return p.Expiration == 14*24*3600
		})).Return(&consumerhost.HostingPlan{ID: 3}, nil).Once()

		_, created, err := NewHostingPlanService(host, 18).CreateHostingPlan(ctx, req)
		require.Nil(t, err)
		assert.True(t, created)
	})

	t.Run("existing plan for the deployment is kept", func(t *testing.T) {
		host := mocks.NewConsumerHostInterface(t)
		host.On("ListHostingPlans", mock.Anything, "0xconsumer").
			Return([]consumerhost.HostingPlan{{ID: 7, Deployment: consumerhost.HostingPlanDeployment{Deployment: "QmDeployment"}}}, nil).Once()

		plan, created, err := NewHostingPlanService(host, 18).CreateHostingPlan(ctx, req)
		require.Nil(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(7), plan.ID)
	})

	t.Run("listing failure is an rpc error", func(t *testing.T) {
		host := mocks.NewConsumerHostInterface(t)
		host.On("ListHostingPlans", mock.Anything, "0xconsumer").
			Return(nil, types.NewRpcError(errors.New("rate limit exceeded"))).Once()

		_, _, err := NewHostingPlanService(host, 18).CreateHostingPlan(ctx, req)
		require.NotNil(t, err)
		assert.Equal(t, types.RpcError, err.ErrorCode)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  PlanRequest
		}{
			{"too few operators", PlanRequest{Account: "0xconsumer", Deployment: "QmDeployment", Price: "2", Maximum: 1}},
			{"too many operators", PlanRequest{Account: "0xconsumer", Deployment: "QmDeployment", Price: "2", Maximum: 16}},
			{"zero price", PlanRequest{Account: "0xconsumer", Deployment: "QmDeployment", Price: "0", Maximum: 2}},
			{"missing price", PlanRequest{Account: "0xconsumer", Deployment: "QmDeployment", Maximum: 2}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				host := mocks.NewConsumerHostInterface(t)
				host.On("ListHostingPlans", mock.Anything, "0xconsumer").Return([]consumerhost.HostingPlan{}, nil).Once()
				host.On("GetChannelLimit", mock.Anything).Return(nil, errors.New("down")).Once()

				_, _, err := NewHostingPlanService(host, 18).CreateHostingPlan(ctx, tc.req)
				require.NotNil(t, err)
				assert.Equal(t, types.BadRequest, err.ErrorCode)
			})
		}
	})

	t.Run("missing account", func(t *testing.T) {
		_, _, err := NewHostingPlanService(mocks.NewConsumerHostInterface(t), 18).CreateHostingPlan(ctx, PlanRequest{})
		require.NotNil(t, err)
		assert.Equal(t, types.BadRequest, err.ErrorCode)
	})
}

func TestUpdateHostingPlan(t *testing.T) {
	ctx := context.Background()

	host := mocks.NewConsumerHostInterface(t)
	host.On("GetChannelLimit", mock.Anything).Return(nil, errors.New("down")).Once()
	host.On("UpdateHostingPlan", mock.Anything, consumerhost.HostingPlanParams{
		ID:           "7",
		DeploymentID: "QmDeployment",
		Price:        "1500000",
		Maximum:      4,
		Expiration:   14 * 24 * 3600,
	}).Return(&consumerhost.HostingPlan{ID: 7}, nil).Once()

	// six decimals and no project: only the channel minimum applies
	svc := NewHostingPlanService(host, 6)
	plan, err := svc.UpdateHostingPlan(ctx, "7", PlanRequest{Deployment: "QmDeployment", Price: "1500", Maximum: 4})
	require.Nil(t, err)
	assert.Equal(t, int64(7), plan.ID)

	_, err = svc.UpdateHostingPlan(ctx, "0", PlanRequest{Deployment: "QmDeployment", Price: "1", Maximum: 2})
	require.NotNil(t, err)
	assert.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestPricePerRequest(t *testing.T) {
	svc := NewHostingPlanService(nil, 6)

	price, err := svc.pricePerRequest("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500", price.String())

	// truncated like an integer division
	price, err = svc.pricePerRequest("0.001999")
	require.NoError(t, err)
	assert.Equal(t, "1", price.String())

	_, err = svc.pricePerRequest("1.1234567")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than 6 decimals")
}
