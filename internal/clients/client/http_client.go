package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/types"
)

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	// Timeout overrides the client's default request timeout when set.
	Timeout time.Duration
	Path    string
	// TemplatePath labels the request in metrics so path parameters do not
	// explode the label cardinality.
	TemplatePath string
	Headers      map[string]string
}

// SendRequest sends input as a JSON body (nil for none) and decodes a JSON answer.
// Every failure, including non-2xx answers, is an RPC error. A 429 answer carries
// "rate limit exceeded" in its message so callers can retry on it.
func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, *types.Error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return nil, types.NewInternalServiceError(fmt.Errorf("failed to encode request body for %s: %w", url, err))
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to create request for %s: %w", url, err))
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	observe := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, opts.TemplatePath)
	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		observe(0)
		return nil, types.NewRpcError(fmt.Errorf("failed to call %s: %w", url, err))
	}
	defer resp.Body.Close()
	observe(resp.StatusCode)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, types.NewRpcError(fmt.Errorf("rate limit exceeded when calling %s", url))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Ctx(ctx).Debug().
			Str("url", url).
			Int("status_code", resp.StatusCode).
			Bytes("body", msg).
			Msg("remote service answered with an error")
		return nil, types.NewRpcError(fmt.Errorf("%s answered %d: %s", url, resp.StatusCode, bytes.TrimSpace(msg)))
	}

	var result R
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, types.NewRpcError(fmt.Errorf("failed to decode response from %s: %w", url, err))
	}

	return &result, nil
}
