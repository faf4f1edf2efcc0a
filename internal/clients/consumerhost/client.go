package consumerhost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/clients/client"
	"github.com/leopardracer/network-app/internal/config"
)

const (
	projectsPath     = "/projects/"
	channelLimitPath = "/channel-limit"
	hostingPlansPath = "/users/hosting-plans"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.ConsumerHostConfig
}

func (c *Client) GetBaseURL() string {
	return strings.TrimRight(c.cfg.URL, "/")
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func NewClient(cfg *config.ConsumerHostConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

type empty struct{}

func (c *Client) GetProjectIndexers(ctx context.Context, projectID, deployment string) ([]ProjectIndexer, error) {
	if projectID == "" {
		return nil, fmt.Errorf("empty project id provided")
	}

	call := func() ([]ProjectIndexer, error) {
		path := projectsPath + url.PathEscape(projectID)
		if deployment != "" {
			path += "?" + url.Values{"deployment": {deployment}}.Encode()
		}
		opts := &client.HttpClientOptions{
			Path:         path,
			TemplatePath: projectsPath + "{id}",
		}

		resp, err := client.SendRequest[empty, projectResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		if resp.Indexers == nil {
			return []ProjectIndexer{}, nil
		}
		return resp.Indexers, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get indexers of project %s: %w", projectID, err)
	}
	return result, nil
}

func (c *Client) GetChannelLimit(ctx context.Context) (*ChannelLimit, error) {
	call := func() (*ChannelLimit, error) {
		opts := &client.HttpClientOptions{
			Path:         channelLimitPath,
			TemplatePath: channelLimitPath,
		}
		resp, err := client.SendRequest[empty, ChannelLimit](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel limit: %w", err)
	}
	return result, nil
}

func (c *Client) ListHostingPlans(ctx context.Context, account string) ([]HostingPlan, error) {
	if account == "" {
		return nil, fmt.Errorf("empty account provided")
	}

	call := func() ([]HostingPlan, error) {
		opts := &client.HttpClientOptions{
			Path:         hostingPlansPath + "?user=" + url.QueryEscape(account),
			TemplatePath: hostingPlansPath,
		}
		resp, err := client.SendRequest[empty, []HostingPlan](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}
		if *resp == nil {
			return []HostingPlan{}, nil
		}
		return *resp, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to list hosting plans of %s: %w", account, err)
	}
	return result, nil
}

func (c *Client) CreateHostingPlan(ctx context.Context, params HostingPlanParams) (*HostingPlan, error) {
	call := func() (*HostingPlan, error) {
		opts := &client.HttpClientOptions{
			Path:         hostingPlansPath,
			TemplatePath: hostingPlansPath,
		}
		resp, err := client.SendRequest[HostingPlanParams, HostingPlan](ctx, c, http.MethodPost, opts, &params)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create hosting plan for %s: %w", params.DeploymentID, err)
	}
	return result, nil
}

func (c *Client) UpdateHostingPlan(ctx context.Context, params HostingPlanParams) (*HostingPlan, error) {
	if params.ID == "" || params.ID == "0" {
		return nil, fmt.Errorf("hosting plan id is required for an update")
	}

	call := func() (*HostingPlan, error) {
		opts := &client.HttpClientOptions{
			Path:         hostingPlansPath + "/" + url.PathEscape(params.ID),
			TemplatePath: hostingPlansPath + "/{id}",
		}
		resp, err := client.SendRequest[HostingPlanParams, HostingPlan](ctx, c, http.MethodPost, opts, &params)
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to update hosting plan %s: %w", params.ID, err)
	}
	return result, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.ConsumerHostConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return err != nil && strings.Contains(err.Error(), "rate limit exceeded")
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("rate limit exceeded, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
