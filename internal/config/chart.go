package config

import (
	"errors"
)

const (
	defaultTokenSymbol   = "SQT"
	defaultTokenDecimals = 18
)

type ChartConfig struct {
	TokenSymbol   string `mapstructure:"token-symbol"`
	TokenDecimals int    `mapstructure:"token-decimals"`
}

func (cfg *ChartConfig) Validate() error {
	if cfg.TokenSymbol == "" {
		return errors.New("token-symbol is required")
	}
	if cfg.TokenDecimals < 0 || cfg.TokenDecimals > 36 {
		return errors.New("token-decimals must be between 0 and 36")
	}

	return nil
}
