package consumerhost

import "context"

//go:generate mockery --name=ConsumerHostInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_consumer_host_client.go
type ConsumerHostInterface interface {
	GetProjectIndexers(ctx context.Context, projectID, deployment string) ([]ProjectIndexer, error)
	GetChannelLimit(ctx context.Context) (*ChannelLimit, error)
	ListHostingPlans(ctx context.Context, account string) ([]HostingPlan, error)
	CreateHostingPlan(ctx context.Context, params HostingPlanParams) (*HostingPlan, error)
	UpdateHostingPlan(ctx context.Context, params HostingPlanParams) (*HostingPlan, error)
}
