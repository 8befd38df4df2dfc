// Package account holds the bootstrap glue commands for member
// accounts. These are thin, sequential organization API calls; all
// reconciliation logic lives under the zone command group.
package account

import (
	"context"

	"mwhitfielddev/zonekeeper/internal/config"
	"mwhitfielddev/zonekeeper/internal/providers/awscloud"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "account" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Bootstrap and inspect organization member accounts",
	}

	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ListOUsCommand())

	cmd.PersistentFlags().String("profile", "", "Management account profile (overrides config)")

	return cmd
}

// newAccountAPI builds the organizations provider for the management
// account.
func newAccountAPI(ctx context.Context, cmd *cobra.Command) (*awscloud.OrganizationsProvider, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	profile := cmd.Flag("profile").Value.String()
	if profile == "" {
		profile = cfg.Profile
	}

	awsCfg, err := awscloud.LoadConfig(ctx, profile, cfg.Region)
	if err != nil {
		return nil, err
	}
	return awscloud.NewOrganizationsProvider(awsCfg), nil
}
