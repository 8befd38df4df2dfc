package zone

import (
	"context"
	"fmt"

	"mwhitfielddev/zonekeeper/internal/config"
	"mwhitfielddev/zonekeeper/internal/providers/awscloud"
	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "zone" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Reconcile, inspect, and export the shared hosted zone",
	}

	cmd.AddCommand(CleanupCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ExportCommand())

	cmd.PersistentFlags().String("zone", "", "Hosted zone ID (overrides config)")
	cmd.PersistentFlags().String("profile", "", "Management account profile (overrides config)")
	cmd.PersistentFlags().String("region", "", "AWS region (overrides config)")

	return cmd
}

// zoneStore is the combined read/mutate surface the zone commands need.
type zoneStore interface {
	domain.ZoneReader
	domain.ZoneMutator
}

// Provider construction is behind package variables so tests can swap
// in fakes, the same way config and database expose SetPath.
var (
	newZoneStore      = defaultZoneStore
	newAccountListers = defaultAccountListers
)

// resolveZoneID returns the hosted zone ID from the --zone flag or config.
func resolveZoneID(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if z := cmd.Flag("zone").Value.String(); z != "" {
		return z, nil
	}
	if cfg.ZoneID != "" {
		return cfg.ZoneID, nil
	}
	return "", fmt.Errorf("no hosted zone specified: use --zone or set one with 'zonekeeper config set zone-id <id>'")
}

// defaultZoneStore builds the Route53 provider for the management
// account, honoring flag overrides.
func defaultZoneStore(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (zoneStore, error) {
	profile := cmd.Flag("profile").Value.String()
	if profile == "" {
		profile = cfg.Profile
	}
	region := cmd.Flag("region").Value.String()
	if region == "" {
		region = cfg.Region
	}

	awsCfg, err := awscloud.LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	return awscloud.NewRoute53Provider(awsCfg), nil
}

// defaultAccountListers builds one CloudFront lister per configured
// member account context. A context whose credentials fail to load
// still gets an entry so the failure shows up in the collection report.
func defaultAccountListers(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (map[string]domain.DistributionLister, error) {
	if len(cfg.Accounts) == 0 {
		return nil, fmt.Errorf("no member accounts configured: add one with 'zonekeeper config set account.<name> <profile>'")
	}

	region := cmd.Flag("region").Value.String()
	if region == "" {
		region = cfg.Region
	}

	listers := make(map[string]domain.DistributionLister, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		awsCfg, err := awscloud.LoadConfig(ctx, a.Profile, region)
		if err != nil {
			listers[a.Name] = failingLister{err: err}
			continue
		}
		listers[a.Name] = awscloud.NewCloudFrontLister(awsCfg, a.Name)
	}
	return listers, nil
}

// failingLister surfaces a credential-load failure through the normal
// per-account report path instead of aborting the run.
type failingLister struct {
	err error
}

func (f failingLister) ListDistributions(context.Context) ([]domain.Endpoint, error) {
	return nil, f.err
}
