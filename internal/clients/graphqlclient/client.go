package graphqlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/observability/metrics"
)

// maxErrorBodySize caps how much of a failed response body ends up in the error.
const maxErrorBodySize = 512

// Client executes GraphQL operations over HTTP POST.
type Client struct {
	endpoint   string
	httpClient *http.Client
	cfg        *config.GraphQLConfig
}

func New(cfg *config.GraphQLConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     cfg.Timeout * 4,
			},
		},
		cfg: cfg,
	}
}

type request struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// RequestError is returned for every failed operation: transport failures, non-2xx
// answers and GraphQL errors alike.
type RequestError struct {
	Operation  string
	StatusCode int
	Message    string
	retryable  bool
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("graphql %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("graphql %s: status %d: %s", e.Operation, e.StatusCode, e.Message)
}

func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// Do runs the operation and decodes its data field into out. Transport errors, 429 and
// 5xx answers are retried with exponential backoff; GraphQL errors are not.
func (c *Client) Do(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	call := func() (json.RawMessage, error) {
		return c.send(ctx, operation, query, variables)
	}

	data, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetryTimes),
		retry.Delay(c.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var reqErr *RequestError
			return errors.As(err, &reqErr) && reqErr.retryable
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Str("operation", operation).
				Uint("attempt", n+1).
				Uint("max_attempts", c.cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call the GraphQL service, retrying")
		}))
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{Operation: operation, StatusCode: http.StatusOK, Message: "failed to decode data: " + err.Error()}
	}
	return nil
}

func (c *Client) send(ctx context.Context, operation, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(request{OperationName: operation, Query: query, Variables: variables})
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to encode %s request: %w", operation, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create %s request: %w", operation, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	observe := metrics.StartClientRequestDurationTimer(c.endpoint, http.MethodPost, operation)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(0)
		return nil, &RequestError{Operation: operation, Message: err.Error(), retryable: ctx.Err() == nil}
	}
	defer resp.Body.Close()
	observe(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &RequestError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    string(bytes.TrimSpace(msg)),
			retryable:  resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &RequestError{Operation: operation, StatusCode: resp.StatusCode, Message: "invalid response: " + err.Error()}
	}
	if len(decoded.Errors) > 0 {
		msgs := make([]string, len(decoded.Errors))
		for i, e := range decoded.Errors {
			msgs[i] = e.Message
		}
		return nil, &RequestError{Operation: operation, StatusCode: resp.StatusCode, Message: fmt.Sprintf("%q", msgs)}
	}

	return decoded.Data, nil
}
