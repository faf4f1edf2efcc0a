package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultGraphQLTimeout = 20 * time.Second
	defaultMaxRetryTimes  = 3
	defaultRetryInterval  = 500 * time.Millisecond
)

// GraphQLConfig defines a GraphQL endpoint of the network's query services.
type GraphQLConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *GraphQLConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q", cfg.Endpoint)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout should be positive")
	}
	if cfg.MaxRetryTimes <= 0 {
		return fmt.Errorf("max retry times should be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("retry interval should be positive")
	}

	return nil
}
