package config

import (
	"fmt"
	"time"
)

const defaultConsumerHostTimeout = 15 * time.Second

type ConsumerHostConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *ConsumerHostConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("consumer host URL must be set")
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
