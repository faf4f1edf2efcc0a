package graphqlclient

import "context"

type Executor interface {
	Do(ctx context.Context, operation, query string, variables map[string]any, out any) error
}

var _ Executor = (*Client)(nil)
