package config

import (
	"errors"
	"time"
)

const defaultEraPollingInterval = time.Minute

type PollerConfig struct {
	EraPollingInterval time.Duration `mapstructure:"era-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.EraPollingInterval < 0 {
		return errors.New("era-polling-interval must be positive")
	}
	if cfg.EraPollingInterval == 0 {
		cfg.EraPollingInterval = defaultEraPollingInterval
	}

	return nil
}
