package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/leopardracer/network-app/internal/clients/geoclient"
	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/observability/tracing"
)

// GeoLookupCmd prints the location of the given indexers:
// ./network-app geo-lookup 0xabc 0xdef --config config.yml
func GeoLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geo-lookup [indexer...]",
		Short: "Resolve the geographic location of indexers",
		RunE:  geoLookup,
	}

	return cmd
}

func geoLookup(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	info, err := geoclient.NewClient(graphqlclient.New(&cfg.TopIndexers)).GetGeoInformation(ctx, args)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
