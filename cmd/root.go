package cmd

import (
	"os"

	"mwhitfielddev/zonekeeper/cmd/commands/account"
	"mwhitfielddev/zonekeeper/cmd/commands/audit"
	cfgcmd "mwhitfielddev/zonekeeper/cmd/commands/config"
	"mwhitfielddev/zonekeeper/cmd/commands/zone"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "zonekeeper",
		Short: "Reconcile a shared Route53 zone against live CloudFront distributions",
		Long: `zonekeeper manages the lifecycle of a DNS zone shared across an AWS
organization. It cross-references the authoritative Route53 zone with the
live CloudFront distributions of every member account, classifies each
record as KEEP, DELETE, or SKIP, and removes verified orphans in bounded
atomic batches.

Quick start:
  zonekeeper config set zone-id Z0123456789ABC   # Target hosted zone
  zonekeeper zone cleanup                        # Dry run (report only)
  zonekeeper zone cleanup --apply                # Delete after confirmation
  zonekeeper zone export                         # Snapshot the zone to disk`,
	}

	cmd.AddCommand(zone.NewCommand())
	cmd.AddCommand(account.NewCommand())
	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
