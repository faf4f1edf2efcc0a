package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/clients/networkclient"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/observability/metrics"
)

const (
	defaultConfigFileName = "config.yml"
)

var cfgPath string

// NewRootCmd builds the command tree. Every command talks to instrumented clients,
// so the collectors are registered before any of them runs.
func NewRootCmd(defaultConfigPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "network-app",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			metrics.Register()
		},
	}

	cmd.AddCommand(StartServerCmd())
	cmd.AddCommand(StakeChartCmd())
	cmd.AddCommand(GeoLookupCmd())
	cmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))

	return cmd
}

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	return NewRootCmd(getDefaultConfigFile(homePath, defaultConfigFileName)).Execute()
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}

func newNetworkClient(cfg *config.Config) networkclient.NetworkInterface {
	return networkclient.NewNetworkClientWithMetrics(
		networkclient.NewNetworkClient(graphqlclient.New(&cfg.Network)),
	)
}
