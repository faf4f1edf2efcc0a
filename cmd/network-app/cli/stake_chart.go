package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leopardracer/network-app/internal/chart"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/observability/tracing"
	"github.com/leopardracer/network-app/internal/services"
	"github.com/leopardracer/network-app/pkg"
)

type stakeChartFlags struct {
	account           string
	rng               string
	delegatedToOthers bool
	output            string
}

// StakeChartCmd builds a stake chart once and prints it as JSON, or writes it as a
// PNG image with --output:
// ./network-app stake-chart --account 0x... --range l3m --config config.yml
func StakeChartCmd() *cobra.Command {
	var flags stakeChartFlags
	cmd := &cobra.Command{
		Use:   "stake-chart",
		Short: "Build the staking and delegation chart of the network or of an indexer",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return stakeChart(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.account, "account", "", "indexer or delegator address, empty for the whole network")
	cmd.Flags().StringVar(&flags.rng, "range", string(era.LastMonth), "lookback range: lm, l3m or ly")
	cmd.Flags().BoolVar(&flags.delegatedToOthers, "delegated-to-others", false, "chart what the account delegates to other indexers")
	cmd.Flags().StringVar(&flags.output, "output", "", "write a PNG image to this path instead of printing JSON")

	return cmd
}

func stakeChart(cmd *cobra.Command, flags stakeChartFlags) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	rng, err := era.ParseRange(flags.rng)
	if err != nil {
		return err
	}

	account := flags.account
	if account != "" {
		if account, err = pkg.NormalizeAddress(account); err != nil {
			return err
		}
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	builder := services.NewChartBuilder(newNetworkClient(cfg), &cfg.Chart)
	data, typedErr := builder.Build(ctx, services.ChartRequest{
		Account:           account,
		Range:             rng,
		DelegatedToOthers: flags.delegatedToOthers,
	})
	if typedErr != nil {
		return typedErr
	}

	if flags.output == "" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	f, err := os.Create(flags.output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := chart.RenderPNG(f, data); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}
