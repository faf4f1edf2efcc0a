package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/clients/consumerhost"
	"github.com/leopardracer/network-app/internal/types"
)

// Plan prices are entered per thousand requests.
const requestsPerPrice = 1000

const minPlanMaximum = 2

// DefaultChannelLimits apply when the consumer host cannot tell its own.
var DefaultChannelLimits = ChannelLimits{
	MaxNum:        15,
	MinAmount:     33.33333,
	MinExpiration: 14 * 24 * time.Hour,
}

type ChannelLimits struct {
	MaxNum        int64         `json:"maxNum"`
	MinAmount     float64       `json:"minAmount"`
	MinExpiration time.Duration `json:"minExpiration"`
}

type MatchedIndexers struct {
	Count    int                           `json:"count"`
	Indexers []consumerhost.ProjectIndexer `json:"indexers"`
}

// PlanRequest is a hosting plan as entered by a consumer. Price is in whole tokens
// per thousand requests.
type PlanRequest struct {
	Account    string
	ProjectID  string
	Deployment string
	Price      string
	Maximum    int64
}

type HostingPlanService struct {
	host     consumerhost.ConsumerHostInterface
	decimals int
}

func NewHostingPlanService(host consumerhost.ConsumerHostInterface, decimals int) *HostingPlanService {
	return &HostingPlanService{host: host, decimals: decimals}
}

// ChannelLimits returns the consumer host's channel limits or the defaults when
// they cannot be fetched.
func (s *HostingPlanService) ChannelLimits(ctx context.Context) ChannelLimits {
	limit, err := s.host.GetChannelLimit(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("failed to get channel limit, using defaults")
		return DefaultChannelLimits
	}
	return ChannelLimits{
		MaxNum:        limit.ChannelMaxNum,
		MinAmount:     limit.ChannelMinAmount,
		MinExpiration: time.Duration(limit.ChannelMinDays) * 24 * time.Hour,
	}
}

// MatchedIndexers returns the indexers of a deployment whose price per thousand
// requests does not exceed price. A missing price matches nothing.
func (s *HostingPlanService) MatchedIndexers(
	ctx context.Context, projectID, deployment, price string,
) (*MatchedIndexers, *types.Error) {
	if projectID == "" {
		return nil, types.NewBadRequestError(errors.New("project id is required"))
	}

	result := &MatchedIndexers{Indexers: []consumerhost.ProjectIndexer{}}
	if price == "" {
		return result, nil
	}
	limit, err := math.LegacyNewDecFromStr(price)
	if err != nil {
		return nil, types.NewBadRequestError(fmt.Errorf("invalid price %q: %w", price, err))
	}
	if !limit.IsPositive() {
		return result, nil
	}

	for _, indexer := range s.projectIndexers(ctx, projectID, deployment) {
		perThousand, err := s.pricePerThousand(indexer.Price)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("indexer", indexer.Indexer).Msg("skipping indexer with invalid price")
			continue
		}
		if perThousand.LTE(limit) {
			result.Indexers = append(result.Indexers, indexer)
		}
	}
	result.Count = len(result.Indexers)

	return result, nil
}

// ListHostingPlans returns the plans of account.
func (s *HostingPlanService) ListHostingPlans(ctx context.Context, account string) ([]consumerhost.HostingPlan, *types.Error) {
	if account == "" {
		return nil, types.NewBadRequestError(errors.New("account is required"))
	}
	plans, err := s.host.ListHostingPlans(ctx, account)
	if err != nil {
		return nil, classify(err, "failed to list hosting plans")
	}
	return plans, nil
}

// CreateHostingPlan creates a plan for the deployment unless the account already
// has one, in which case the existing plan is returned and created is false.
func (s *HostingPlanService) CreateHostingPlan(
	ctx context.Context, req PlanRequest,
) (plan *consumerhost.HostingPlan, created bool, typedErr *types.Error) {
	if req.Account == "" {
		return nil, false, types.NewBadRequestError(errors.New("account is required"))
	}
	if req.Deployment == "" {
		return nil, false, types.NewBadRequestError(errors.New("deployment is required"))
	}

	existing, err := s.host.ListHostingPlans(ctx, req.Account)
	if err != nil {
		return nil, false, classify(err, "failed to list hosting plans")
	}
	for i := range existing {
		if existing[i].Deployment.Deployment == req.Deployment {
			log.Ctx(ctx).Info().
				Str("account", req.Account).
				Str("deployment", req.Deployment).
				Int64("plan_id", existing[i].ID).
				Msg("hosting plan already exists")
			return &existing[i], false, nil
		}
	}

	params, typedErr := s.planParams(ctx, "0", req)
	if typedErr != nil {
		return nil, false, typedErr
	}

	plan, err = s.host.CreateHostingPlan(ctx, *params)
	if err != nil {
		return nil, false, classify(err, "failed to create hosting plan")
	}
	return plan, true, nil
}

func (s *HostingPlanService) UpdateHostingPlan(
	ctx context.Context, id string, req PlanRequest,
) (*consumerhost.HostingPlan, *types.Error) {
	if id == "" || id == "0" {
		return nil, types.NewBadRequestError(errors.New("hosting plan id is required"))
	}
	if req.Deployment == "" {
		return nil, types.NewBadRequestError(errors.New("deployment is required"))
	}

	params, typedErr := s.planParams(ctx, id, req)
	if typedErr != nil {
		return nil, typedErr
	}

	plan, err := s.host.UpdateHostingPlan(ctx, *params)
	if err != nil {
		return nil, classify(err, "failed to update hosting plan")
	}
	return plan, nil
}

func (s *HostingPlanService) planParams(
	ctx context.Context, id string, req PlanRequest,
) (*consumerhost.HostingPlanParams, *types.Error) {
	limits := s.ChannelLimits(ctx)
	if req.Maximum < minPlanMaximum {
		return nil, types.NewBadRequestError(
			fmt.Errorf("the minimal number of allocated node operators is %d", minPlanMaximum))
	}
	if req.Maximum > limits.MaxNum {
		return nil, types.NewBadRequestError(
			fmt.Errorf("the maximum number of node operators can not be more than %d", limits.MaxNum))
	}

	price, err := s.pricePerRequest(req.Price)
	if err != nil {
		return nil, types.NewBadRequestError(err)
	}

	// the longest expiration any indexer accepts, but never below the channel minimum
	var expiration int64
	for _, indexer := range s.projectIndexers(ctx, req.ProjectID, req.Deployment) {
		expiration = max(expiration, indexer.MaxTime)
	}
	expiration = max(expiration, int64(limits.MinExpiration/time.Second))

	return &consumerhost.HostingPlanParams{
		ID:           id,
		DeploymentID: req.Deployment,
		Price:        price.String(),
		Maximum:      req.Maximum,
		Expiration:   expiration,
	}, nil
}

// projectIndexers treats a consumer host failure as a deployment without indexers.
func (s *HostingPlanService) projectIndexers(ctx context.Context, projectID, deployment string) []consumerhost.ProjectIndexer {
	if projectID == "" {
		return nil
	}
	indexers, err := s.host.GetProjectIndexers(ctx, projectID, deployment)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("project_id", projectID).Msg("failed to get project indexers")
		return nil
	}
	return indexers
}

// pricePerRequest converts a price in whole tokens per thousand requests into the
// token's smallest unit per request, truncated.
func (s *HostingPlanService) pricePerRequest(price string) (math.Int, error) {
	if price == "" {
		return math.Int{}, errors.New("price is required")
	}
	p, err := math.LegacyNewDecFromStr(price)
	if err != nil {
		return math.Int{}, fmt.Errorf("invalid price %q: %w", price, err)
	}
	if !p.IsPositive() {
		return math.Int{}, fmt.Errorf("price must be positive, got %s", price)
	}

	units := p.MulInt(math.NewIntWithDecimal(1, s.decimals))
	if !units.IsInteger() {
		return math.Int{}, fmt.Errorf("price %s has more than %d decimals", price, s.decimals)
	}
	return units.TruncateInt().QuoRaw(requestsPerPrice), nil
}

// pricePerThousand converts a per request price in the token's smallest unit into
// whole tokens per thousand requests.
func (s *HostingPlanService) pricePerThousand(raw string) (math.LegacyDec, error) {
	units, ok := math.NewIntFromString(raw)
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("invalid price %q", raw)
	}
	unit := math.LegacyNewDecFromInt(math.NewIntWithDecimal(1, s.decimals))
	return math.LegacyNewDecFromInt(units.MulRaw(requestsPerPrice)).Quo(unit), nil
}
