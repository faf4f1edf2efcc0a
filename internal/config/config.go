package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "NETWORK_APP"

type Config struct {
	Network      GraphQLConfig      `mapstructure:"network"`
	TopIndexers  GraphQLConfig      `mapstructure:"top-indexers"`
	ConsumerHost ConsumerHostConfig `mapstructure:"consumer-host"`
	Chart        ChartConfig        `mapstructure:"chart"`
	Poller       PollerConfig       `mapstructure:"poller"`
	Server       ServerConfig       `mapstructure:"server"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
	LogLevel     string             `mapstructure:"log-level"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Network.Validate(); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := cfg.TopIndexers.Validate(); err != nil {
		return fmt.Errorf("top-indexers: %w", err)
	}
	if err := cfg.ConsumerHost.Validate(); err != nil {
		return fmt.Errorf("consumer-host: %w", err)
	}
	if err := cfg.Chart.Validate(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if err := cfg.Poller.Validate(); err != nil {
		return fmt.Errorf("poller: %w", err)
	}
	if err := cfg.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("invalid log-level %q: %w", cfg.LogLevel, err)
		}
	}

	return nil
}

// New reads the config file at cfgFile. Every key can be overridden from the
// environment, e.g. network.endpoint -> NETWORK_APP_NETWORK_ENDPOINT.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("network.timeout", defaultGraphQLTimeout)
	v.SetDefault("network.max-retry-times", defaultMaxRetryTimes)
	v.SetDefault("network.retry-interval", defaultRetryInterval)
	v.SetDefault("top-indexers.timeout", defaultGraphQLTimeout)
	v.SetDefault("top-indexers.max-retry-times", defaultMaxRetryTimes)
	v.SetDefault("top-indexers.retry-interval", defaultRetryInterval)
	v.SetDefault("consumer-host.timeout", defaultConsumerHostTimeout)
	v.SetDefault("consumer-host.max-retry-times", defaultMaxRetryTimes)
	v.SetDefault("consumer-host.retry-interval", defaultRetryInterval)
	v.SetDefault("chart.token-symbol", defaultTokenSymbol)
	v.SetDefault("chart.token-decimals", defaultTokenDecimals)
	v.SetDefault("poller.era-polling-interval", defaultEraPollingInterval)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.read-timeout", defaultServerTimeout)
	v.SetDefault("server.write-timeout", defaultServerTimeout)
	v.SetDefault("server.idle-timeout", defaultServerIdleTimeout)
	v.SetDefault("metrics.host", defaultMetricsHost)
	v.SetDefault("metrics.port", defaultMetricsPort)
}
